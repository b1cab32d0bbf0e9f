package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/practiceconsole/internal/console/listing"
	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"golang.org/x/sync/errgroup"
)

var priorityRank = map[string]int{
	"low":    1,
	"medium": 2,
	"high":   3,
	"urgent": 4,
}

func runClientsList(ctx context.Context, e *env, args []string) error {
	fs := e.flags("clients list")
	search := fs.String("search", "", "match name, email, GSTIN or PAN")
	status := fs.String("status", "", "filter by status")
	priority := fs.String("priority", "", "filter by priority")
	sortBy := fs.String("sort", "name", "sort key: name, created, outstanding or priority")
	order := fs.String("order", "asc", "sort order: asc or desc")
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 20, "clients per page")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	params := consolesdk.Params{}
	setParam(params, "search", *search)
	setParam(params, "status", *status)
	setParam(params, "priority", *priority)

	clients, err := e.api.Clients.List(ctx, params)
	if err != nil {
		return err
	}

	// Servers that ignore the parameters still yield a filtered list.
	clients = listing.Search(clients, *search, func(c consolesdk.Client) []string {
		return []string{c.Name, c.Email, c.GSTIN, c.PAN}
	})
	clients = listing.Equals(clients, *status, func(c consolesdk.Client) string { return c.Status })
	clients = listing.Equals(clients, *priority, func(c consolesdk.Client) string { return c.Priority })

	clients, err = sortClients(clients, *sortBy, listing.ParseOrder(*order))
	if err != nil {
		return err
	}

	p := listing.Paginate(clients, *page, *perPage)
	if e.out.json {
		return e.out.JSON(p)
	}

	rows := make([][]string, 0, len(p.Items))
	for _, c := range p.Items {
		rows = append(rows, []string{
			itoa(c.ID), c.Name, orDash(c.Email), orDash(c.Status), orDash(c.Priority), money(c.OutstandingAmount),
		})
	}
	if err := e.out.Table([]string{"ID", "NAME", "EMAIL", "STATUS", "PRIORITY", "OUTSTANDING"}, rows); err != nil {
		return err
	}

	e.out.Printf("page %d of %d (%d clients)\n", p.Page, max(p.TotalPages, 1), p.Total)
	return nil
}

func sortClients(clients []consolesdk.Client, key string, order listing.Order) ([]consolesdk.Client, error) {
	switch key {
	case "name", "":
		return listing.SortBy(clients, func(c consolesdk.Client) string { return strings.ToLower(c.Name) }, order), nil
	case "created":
		return listing.SortBy(clients, func(c consolesdk.Client) int64 { return c.CreatedAt.UnixNano() }, order), nil
	case "outstanding":
		return listing.SortBy(clients, func(c consolesdk.Client) float64 { return c.OutstandingAmount.InexactFloat64() }, order), nil
	case "priority":
		return listing.SortBy(clients, func(c consolesdk.Client) int { return priorityRank[strings.ToLower(c.Priority)] }, order), nil
	default:
		return nil, usagef("unknown sort key %q", key)
	}
}

func runClientsGet(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one client id")
	}
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	c, err := e.api.Clients.Get(ctx, clientID)
	if err != nil {
		return err
	}

	if e.out.json {
		return e.out.JSON(c)
	}

	return e.out.Fields(
		[2]string{"id", itoa(c.ID)},
		[2]string{"name", c.Name},
		[2]string{"email", orDash(c.Email)},
		[2]string{"phone", orDash(c.Phone)},
		[2]string{"gstin", orDash(c.GSTIN)},
		[2]string{"pan", orDash(c.PAN)},
		[2]string{"city", orDash(c.City)},
		[2]string{"status", orDash(c.Status)},
		[2]string{"priority", orDash(c.Priority)},
		[2]string{"invoices", fmt.Sprint(c.TotalInvoices)},
		[2]string{"total", money(c.TotalAmount)},
		[2]string{"outstanding", money(c.OutstandingAmount)},
		[2]string{"last contact", date(c.LastContact)},
	)
}

func runClientsCreate(ctx context.Context, e *env, args []string) error {
	fs := e.flags("clients create")

	var in consolesdk.ClientInput
	fs.StringVar(&in.Name, "name", "", "client name (required)")
	fs.StringVar(&in.Email, "email", "", "contact email")
	fs.StringVar(&in.Phone, "phone", "", "contact phone")
	fs.StringVar(&in.GSTIN, "gstin", "", "GST identification number")
	fs.StringVar(&in.PAN, "pan", "", "permanent account number")
	fs.StringVar(&in.Address, "address", "", "street address")
	fs.StringVar(&in.City, "city", "", "city")
	fs.StringVar(&in.State, "state", "", "state")
	fs.StringVar(&in.Pincode, "pincode", "", "postal code")
	fs.StringVar(&in.Status, "status", "", "status")
	fs.StringVar(&in.Priority, "priority", "", "priority")
	fs.StringVar(&in.Industry, "industry", "", "industry")
	fs.StringVar(&in.Website, "website", "", "website")
	tags := fs.String("tags", "", "comma separated tags")

	if _, err := parse(fs, args); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return usagef("-name is required")
	}
	for _, tag := range strings.Split(*tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			in.Tags = append(in.Tags, tag)
		}
	}

	c, err := e.api.Clients.Create(ctx, in)
	if err != nil {
		return err
	}

	if e.out.json {
		return e.out.JSON(c)
	}
	e.out.Printf("created client %d %s\n", c.ID, c.Name)
	return nil
}

// runClientsDelete deletes every listed client with one request each, all in
// flight at once. Failures are reported per id.
func runClientsDelete(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return usagef("expected at least one client id")
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		clientID, err := parseID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, clientID)
	}

	errs := make([]error, len(ids))

	var g errgroup.Group
	for i, clientID := range ids {
		g.Go(func() error {
			if _, err := e.api.Clients.Delete(ctx, clientID); err != nil {
				errs[i] = fmt.Errorf("client %d: %w", clientID, err)
				return errs[i]
			}
			return nil
		})
	}

	if err := g.Wait(); err == nil {
		for _, clientID := range ids {
			e.out.Printf("deleted client %d\n", clientID)
		}
		return nil
	}

	for i, clientID := range ids {
		if errs[i] == nil {
			e.out.Printf("deleted client %d\n", clientID)
		}
	}
	return errors.Join(errs...)
}

func runClientsProjects(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one client id")
	}
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	projects, err := e.api.Clients.Projects(ctx, clientID)
	if err != nil {
		return err
	}
	return renderProjects(e, projects)
}

func runClientsInvoices(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one client id")
	}
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	invoices, err := e.api.Clients.Invoices(ctx, clientID)
	if err != nil {
		return err
	}
	return renderInvoices(e, invoices)
}
