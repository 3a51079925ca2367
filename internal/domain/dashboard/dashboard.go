// Package dashboard derives read-only aggregates over a user's invoices and
// projects. Nothing is cached; every call reads the current rows.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rpggio/tradeledger/internal/domain/invoice"
	"github.com/rpggio/tradeledger/internal/domain/project"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// InvoiceLister lists a user's invoices.
type InvoiceLister interface {
	List(ctx context.Context, userID int64) ([]invoice.Invoice, error)
}

// ProjectLister lists a user's projects.
type ProjectLister interface {
	List(ctx context.Context, userID int64) ([]project.Project, error)
}

// Stats summarizes revenue and workload.
type Stats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	PendingInvoices int             `json:"pendingInvoices"`
	ActiveProjects  int             `json:"activeProjects"`
}

// MarshalJSON renders revenue as a JSON number.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalRevenue    json.Number `json:"totalRevenue"`
		PendingInvoices int         `json:"pendingInvoices"`
		ActiveProjects  int         `json:"activeProjects"`
	}{
		TotalRevenue:    json.Number(s.TotalRevenue.String()),
		PendingInvoices: s.PendingInvoices,
		ActiveProjects:  s.ActiveProjects,
	})
}

// StatusCount is the number of invoices in one status.
type StatusCount struct {
	Status invoice.Status `json:"status"`
	Count  int            `json:"count"`
}

// Service computes dashboard aggregates.
type Service struct {
	invoices InvoiceLister
	projects ProjectLister
	logger   *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(invoices InvoiceLister, projects ProjectLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, projects: projects, logger: logger}
}

// Stats returns revenue from paid invoices, the number of invoices awaiting
// payment (sent or viewed) and the number of projects in progress.
func (s *Service) Stats(ctx context.Context, userID int64) (*Stats, error) {
	var (
		invoices []invoice.Invoice
		projects []project.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.List(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing dashboard stats: %w", err)
	}

	return Summarize(invoices, projects), nil
}

// Summarize computes Stats from already loaded rows.
func Summarize(invoices []invoice.Invoice, projects []project.Project) *Stats {
	stats := &Stats{TotalRevenue: decimal.Zero}
	for _, inv := range invoices {
		switch inv.Status {
		case invoice.StatusPaid:
			stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
		case invoice.StatusSent, invoice.StatusViewed:
			stats.PendingInvoices++
		}
	}
	for _, p := range projects {
		if p.Status == project.StatusInProgress {
			stats.ActiveProjects++
		}
	}
	return stats
}

// InvoiceStatusBreakdown counts the user's invoices per status, in the
// canonical status order. Statuses with no invoices are omitted.
func (s *Service) InvoiceStatusBreakdown(ctx context.Context, userID int64) ([]StatusCount, error) {
	invoices, err := s.invoices.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("computing invoice breakdown: %w", err)
	}
	counts := make(map[invoice.Status]int, len(invoice.Statuses))
	for _, inv := range invoices {
		counts[inv.Status]++
	}
	breakdown := make([]StatusCount, 0, len(counts))
	for _, st := range invoice.Statuses {
		if n := counts[st]; n > 0 {
			breakdown = append(breakdown, StatusCount{Status: st, Count: n})
		}
	}
	return breakdown, nil
}
