package consolesdk

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	invoicesPath        = "/financial/invoices"
	paymentsPath        = "/financial/payments"
	accountsPath        = "/financial/chart-of-accounts"
	ledgerPath          = "/financial/general-ledger"
	reconciliationsPath = "/financial/bank-reconciliations"
)

// FinancialAPI covers invoicing and bookkeeping.
type FinancialAPI struct {
	r Requester
}

// ============================================================================
// Invoices
// ============================================================================

func (f *FinancialAPI) ListInvoices(ctx context.Context, params Params) ([]Invoice, error) {
	return call[[]Invoice](ctx, f.r, &Request{
		Method: http.MethodGet,
		Path:   invoicesPath,
		Query:  params,
	})
}

func (f *FinancialAPI) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := call[Invoice](ctx, f.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(invoicesPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (f *FinancialAPI) CreateInvoice(ctx context.Context, in InvoiceInput) (*Invoice, error) {
	inv, err := call[Invoice](ctx, f.r, &Request{
		Method: http.MethodPost,
		Path:   invoicesPath,
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (f *FinancialAPI) UpdateInvoice(ctx context.Context, id int64, in InvoiceInput) (*Invoice, error) {
	inv, err := call[Invoice](ctx, f.r, &Request{
		Method: http.MethodPut,
		Path:   resourcePath(invoicesPath, id),
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvoice removes an invoice and returns the server's response body.
func (f *FinancialAPI) DeleteInvoice(ctx context.Context, id int64) (json.RawMessage, error) {
	return raw(ctx, f.r, &Request{
		Method: http.MethodDelete,
		Path:   resourcePath(invoicesPath, id),
	})
}

// ============================================================================
// Bookkeeping
// ============================================================================

func (f *FinancialAPI) ListPayments(ctx context.Context, params Params) ([]Record, error) {
	return f.list(ctx, paymentsPath, params)
}

func (f *FinancialAPI) CreatePayment(ctx context.Context, payment Record) (Record, error) {
	return f.create(ctx, paymentsPath, payment)
}

// ListAccounts returns the chart of accounts.
func (f *FinancialAPI) ListAccounts(ctx context.Context, params Params) ([]Record, error) {
	return f.list(ctx, accountsPath, params)
}

// CreateAccount adds an account to the chart of accounts.
func (f *FinancialAPI) CreateAccount(ctx context.Context, account Record) (Record, error) {
	return f.create(ctx, accountsPath, account)
}

func (f *FinancialAPI) ListLedgerEntries(ctx context.Context, params Params) ([]Record, error) {
	return f.list(ctx, ledgerPath, params)
}

func (f *FinancialAPI) CreateLedgerEntry(ctx context.Context, entry Record) (Record, error) {
	return f.create(ctx, ledgerPath, entry)
}

func (f *FinancialAPI) ListBankReconciliations(ctx context.Context, params Params) ([]Record, error) {
	return f.list(ctx, reconciliationsPath, params)
}

func (f *FinancialAPI) CreateBankReconciliation(ctx context.Context, rec Record) (Record, error) {
	return f.create(ctx, reconciliationsPath, rec)
}

func (f *FinancialAPI) list(ctx context.Context, path string, params Params) ([]Record, error) {
	return call[[]Record](ctx, f.r, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  params,
	})
}

func (f *FinancialAPI) create(ctx context.Context, path string, body Record) (Record, error) {
	return call[Record](ctx, f.r, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}
