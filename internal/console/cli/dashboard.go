package cli

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// dashboard is the practice overview shown by the dashboard command.
type dashboard struct {
	Clients        int             `json:"clients"`
	ActiveClients  int             `json:"active_clients"`
	Projects       int             `json:"projects"`
	ActiveProjects int             `json:"active_projects"`
	Invoices       int             `json:"invoices"`
	OverdueCount   int             `json:"overdue_invoices"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	Collected      decimal.Decimal `json:"collected"`
}

func runDashboard(ctx context.Context, e *env, _ []string) error {
	var (
		clients  []consolesdk.Client
		projects []consolesdk.Project
		invoices []consolesdk.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = e.api.Clients.List(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		projects, err = e.api.Compliance.ListProjects(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		invoices, err = e.api.Financial.ListInvoices(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	d := summarize(clients, projects, invoices, e.now())

	if e.out.json {
		return e.out.JSON(d)
	}

	return e.out.Fields(
		[2]string{"clients", itoa(int64(d.Clients)) + " (" + itoa(int64(d.ActiveClients)) + " active)"},
		[2]string{"projects", itoa(int64(d.Projects)) + " (" + itoa(int64(d.ActiveProjects)) + " active)"},
		[2]string{"invoices", itoa(int64(d.Invoices)) + " (" + itoa(int64(d.OverdueCount)) + " overdue)"},
		[2]string{"outstanding", money(d.Outstanding)},
		[2]string{"collected", money(d.Collected)},
	)
}

// summarize counts entities and sums invoice totals. Paid invoices count as
// collected; cancelled ones are ignored; everything else is outstanding and
// overdue once past its due date.
func summarize(clients []consolesdk.Client, projects []consolesdk.Project, invoices []consolesdk.Invoice, now time.Time) dashboard {
	d := dashboard{
		Clients:     len(clients),
		Projects:    len(projects),
		Invoices:    len(invoices),
		Outstanding: decimal.Zero,
		Collected:   decimal.Zero,
	}

	for _, c := range clients {
		if strings.EqualFold(c.Status, "active") {
			d.ActiveClients++
		}
	}

	for _, p := range projects {
		switch strings.ToLower(p.Status) {
		case "completed", "cancelled", "on_hold":
		default:
			d.ActiveProjects++
		}
	}

	for _, inv := range invoices {
		switch strings.ToLower(inv.Status) {
		case "paid":
			d.Collected = d.Collected.Add(inv.Total())
		case "cancelled":
		default:
			d.Outstanding = d.Outstanding.Add(inv.Total())
			if strings.EqualFold(inv.Status, "overdue") || (!inv.DueDate.IsZero() && inv.DueDate.Before(now)) {
				d.OverdueCount++
			}
		}
	}

	return d
}
