package consolesdk

import (
	"github.com/shopspring/decimal"
)

// Entities are owned by the API server. The structs below carry the fields
// the console reads; unknown fields are ignored and missing ones stay zero.

// Record is a loosely typed resource for endpoints whose shape the console
// passes through without interpreting.
type Record = map[string]any

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of the JSON sign-in exchange.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by the sign-in exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user,omitempty"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// User is a console user.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	Status     string    `json:"status,omitempty"`
	IsActive   bool      `json:"is_active"`
	LastActive Timestamp `json:"last_active"`
	CreatedAt  Timestamp `json:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at"`
}

// UserInput is the body for creating or updating a user. Zero fields are
// omitted so updates only touch what is set.
type UserInput struct {
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// ============================================================================
// Clients
// ============================================================================

// Client is a customer of the firm.
type Client struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	GSTIN             string          `json:"gstin"`
	PAN               string          `json:"pan"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	Pincode           string          `json:"pincode"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	Notes             string          `json:"notes"`
	Tags              []string        `json:"tags"`
	AssignedTo        string          `json:"assigned_to"`
	Industry          string          `json:"industry"`
	CompanySize       string          `json:"company_size"`
	Website           string          `json:"website"`
	IsFavorite        bool            `json:"is_favorite"`
	LastContact       Timestamp       `json:"last_contact"`
	TotalInvoices     int             `json:"total_invoices"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	CreatedAt         Timestamp       `json:"created_at"`
	UpdatedAt         Timestamp       `json:"updated_at"`
}

// ClientInput is the body for creating or updating a client.
type ClientInput struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	GSTIN       string   `json:"gstin,omitempty"`
	PAN         string   `json:"pan,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	Pincode     string   `json:"pincode,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AssignedTo  string   `json:"assigned_to,omitempty"`
	Industry    string   `json:"industry,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
	Website     string   `json:"website,omitempty"`
}

// ============================================================================
// Financial
// ============================================================================

// Invoice is a bill raised against a client.
type Invoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      int64           `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	IssueDate     Timestamp       `json:"issue_date"`
	DueDate       Timestamp       `json:"due_date"`
	CreatedAt     Timestamp       `json:"created_at"`
}

// Total returns TotalAmount, falling back to Amount + TaxAmount when the
// server did not compute it.
func (i Invoice) Total() decimal.Decimal {
	if !i.TotalAmount.IsZero() {
		return i.TotalAmount
	}
	return i.Amount.Add(i.TaxAmount)
}

// InvoiceInput is the body for creating or updating an invoice.
type InvoiceInput struct {
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	ClientID      int64            `json:"client_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	TaxAmount     *decimal.Decimal `json:"tax_amount,omitempty"`
	Status        string           `json:"status,omitempty"`
	IssueDate     string           `json:"issue_date,omitempty"`
	DueDate       string           `json:"due_date,omitempty"`
	Description   string           `json:"description,omitempty"`
}

// ============================================================================
// Compliance
// ============================================================================

// Project is an engagement for a client.
type Project struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ClientID   int64     `json:"client_id"`
	ClientName string    `json:"client_name,omitempty"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	Priority   string    `json:"priority"`
	AssignedTo string    `json:"assigned_to"`
	StartDate  Timestamp `json:"start_date"`
	EndDate    Timestamp `json:"end_date"`
}

// Task is a unit of work within a project.
type Task struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Name       string    `json:"name,omitempty"`
	ProjectID  int64     `json:"project_id"`
	AssignedTo string    `json:"assigned_to"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	DueDate    Timestamp `json:"due_date"`
}

// DisplayName returns Title, or Name when the server uses that field.
func (t Task) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// TaskInput is the body for creating or updating a task.
type TaskInput struct {
	Title      string `json:"title,omitempty"`
	ProjectID  int64  `json:"project_id,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Status     string `json:"status,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
}

// ComplianceItem is a statutory filing tracked for a client.
type ComplianceItem struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ComplianceType string    `json:"compliance_type"`
	ClientID       int64     `json:"client_id"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	DueDate        Timestamp `json:"due_date"`
	Description    string    `json:"description"`
}
