package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/practiceconsole/internal/console/listing"
	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
)

// ============================================================================
// Invoices
// ============================================================================

func runInvoicesList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("invoices list")
	status := fs.String("status", "", "filter by status")
	client := fs.Int64("client", 0, "filter by client id")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "status", *status)
	if *client > 0 {
		params.Set("client_id", strconv.FormatInt(*client, 10))
	}

	invoices, err := e.api.Financial.ListInvoices(ctx, params)
	if err != nil {
		return err
	}

	invoices = listing.Equals(invoices, *status, func(i consolesdk.Invoice) string { return i.Status })
	if *client > 0 {
		invoices = listing.Filter(invoices, func(i consolesdk.Invoice) bool { return i.ClientID == *client })
	}

	return renderInvoices(e, invoices)
}

func runInvoicesGet(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one invoice id")
	}
	invoiceID, err := parseID(args[0])
	if err != nil {
		return err
	}

	inv, err := e.api.Financial.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}

	if e.out.json {
		return e.out.JSON(inv)
	}

	return e.out.Fields(
		[2]string{"id", itoa(inv.ID)},
		[2]string{"number", orDash(inv.InvoiceNumber)},
		[2]string{"client", invoiceClient(*inv)},
		[2]string{"amount", money(inv.Amount)},
		[2]string{"tax", money(inv.TaxAmount)},
		[2]string{"total", money(inv.Total())},
		[2]string{"status", orDash(inv.Status)},
		[2]string{"issued", date(inv.IssueDate)},
		[2]string{"due", date(inv.DueDate)},
	)
}

func renderInvoices(e *env, invoices []consolesdk.Invoice) error {
	if e.out.json {
		return e.out.JSON(invoices)
	}

	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			itoa(inv.ID), orDash(inv.InvoiceNumber), invoiceClient(inv), money(inv.Total()), orDash(inv.Status), date(inv.DueDate),
		})
	}
	return e.out.Table([]string{"ID", "NUMBER", "CLIENT", "TOTAL", "STATUS", "DUE"}, rows)
}

func invoiceClient(inv consolesdk.Invoice) string {
	if inv.ClientName != "" {
		return inv.ClientName
	}
	return itoa(inv.ClientID)
}

// ============================================================================
// Users
// ============================================================================

func runUsersList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("users list")
	role := fs.String("role", "", "filter by role")
	search := fs.String("search", "", "match username, name or email")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "role", *role)
	setParam(params, "search", *search)

	users, err := e.api.Users.List(ctx, params)
	if err != nil {
		return err
	}

	users = listing.Equals(users, *role, func(u consolesdk.User) string { return u.Role })
	users = listing.Search(users, *search, func(u consolesdk.User) []string {
		return []string{u.Username, u.FullName, u.Email}
	})

	if e.out.json {
		return e.out.JSON(users)
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			itoa(u.ID), u.Username, orDash(u.FullName), orDash(u.Email), orDash(u.Role), strconv.FormatBool(u.IsActive),
		})
	}
	return e.out.Table([]string{"ID", "USERNAME", "NAME", "EMAIL", "ROLE", "ACTIVE"}, rows)
}

// ============================================================================
// Projects and tasks
// ============================================================================

func runProjectsList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("projects list")
	status := fs.String("status", "", "filter by status")
	client := fs.Int64("client", 0, "filter by client id")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "status", *status)
	if *client > 0 {
		params.Set("client_id", strconv.FormatInt(*client, 10))
	}

	projects, err := e.api.Compliance.ListProjects(ctx, params)
	if err != nil {
		return err
	}

	projects = listing.Equals(projects, *status, func(p consolesdk.Project) string { return p.Status })
	return renderProjects(e, projects)
}

func renderProjects(e *env, projects []consolesdk.Project) error {
	if e.out.json {
		return e.out.JSON(projects)
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			itoa(p.ID), p.Name, orDash(p.ClientName), orDash(p.Status), fmt.Sprintf("%d%%", p.Progress), date(p.EndDate),
		})
	}
	return e.out.Table([]string{"ID", "NAME", "CLIENT", "STATUS", "PROGRESS", "DUE"}, rows)
}

func runTasksList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("tasks list")
	status := fs.String("status", "", "filter by status")
	priority := fs.String("priority", "", "filter by priority")
	project := fs.Int64("project", 0, "filter by project id")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "status", *status)
	setParam(params, "priority", *priority)
	if *project > 0 {
		params.Set("project_id", strconv.FormatInt(*project, 10))
	}

	tasks, err := e.api.Compliance.ListTasks(ctx, params)
	if err != nil {
		return err
	}

	tasks = listing.Equals(tasks, *status, func(t consolesdk.Task) string { return t.Status })
	tasks = listing.Equals(tasks, *priority, func(t consolesdk.Task) string { return t.Priority })

	if e.out.json {
		return e.out.JSON(tasks)
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			itoa(t.ID), t.DisplayName(), orDash(t.AssignedTo), orDash(t.Priority), orDash(t.Status), date(t.DueDate),
		})
	}
	return e.out.Table([]string{"ID", "TITLE", "ASSIGNEE", "PRIORITY", "STATUS", "DUE"}, rows)
}

// ============================================================================
// Compliance
// ============================================================================

func runComplianceList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("compliance list")
	status := fs.String("status", "", "filter by status")
	kind := fs.String("type", "", "filter by compliance type, e.g. GST")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "status", *status)
	setParam(params, "compliance_type", *kind)

	items, err := e.api.Compliance.ListCompliances(ctx, params)
	if err != nil {
		return err
	}

	items = listing.Equals(items, *status, func(c consolesdk.ComplianceItem) string { return c.Status })
	items = listing.Equals(items, *kind, func(c consolesdk.ComplianceItem) string { return c.ComplianceType })
	items = listing.SortBy(items, func(c consolesdk.ComplianceItem) int64 { return c.DueDate.Unix() }, listing.Asc)

	if e.out.json {
		return e.out.JSON(items)
	}

	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			itoa(c.ID), c.Name, orDash(c.ComplianceType), itoa(c.ClientID), orDash(c.Status), date(c.DueDate),
		})
	}
	return e.out.Table([]string{"ID", "NAME", "TYPE", "CLIENT", "STATUS", "DUE"}, rows)
}

func runComplianceMonitor(ctx context.Context, e *env, args []string) error {
	fs := e.flags("compliance monitor")
	client := fs.Int64("client", 0, "limit to one client")
	kind := fs.String("type", "", "compliance type to check")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	var clientID *int64
	if *client > 0 {
		clientID = client
	}

	result, err := e.api.AI.ComplianceMonitoring(ctx, clientID, *kind)
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func runUsersPermissions(ctx context.Context, e *env, _ []string) error {
	body, err := e.api.Users.Permissions(ctx)
	if err != nil {
		return err
	}
	return e.out.Raw(body)
}
