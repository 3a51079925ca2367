package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/dashboard"
	"github.com/rpggio/tradeledger/internal/domain/invoice"
	"github.com/rpggio/tradeledger/internal/domain/project"
	"github.com/rpggio/tradeledger/internal/repository/mocks"
)

func inv(status invoice.Status, total string) invoice.Invoice {
	return invoice.Invoice{Status: status, Total: decimal.RequireFromString(total)}
}

func TestSummarize(t *testing.T) {
	invoices := []invoice.Invoice{
		inv(invoice.StatusPaid, "100"),
		inv(invoice.StatusSent, "50"),
		inv(invoice.StatusPaid, "75"),
	}
	projects := []project.Project{
		{Status: project.StatusInProgress},
		{Status: project.StatusPlanning},
	}

	stats := dashboard.Summarize(invoices, projects)
	require.Equal(t, "175", stats.TotalRevenue.String())
	require.Equal(t, 1, stats.PendingInvoices)
	require.Equal(t, 1, stats.ActiveProjects)
}

func TestSummarize_Empty(t *testing.T) {
	stats := dashboard.Summarize(nil, nil)
	require.True(t, stats.TotalRevenue.IsZero())
	require.Zero(t, stats.PendingInvoices)
	require.Zero(t, stats.ActiveProjects)
}

func TestStats_MarshalJSON(t *testing.T) {
	stats := dashboard.Stats{TotalRevenue: decimal.RequireFromString("175.50"), PendingInvoices: 2, ActiveProjects: 1}

	data, err := json.Marshal(stats)
	require.NoError(t, err)
	require.JSONEq(t, `{"totalRevenue":175.5,"pendingInvoices":2,"activeProjects":1}`, string(data))
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	invoices := &mocks.InvoiceRepository{}
	projects := &mocks.ProjectRepository{}

	invoices.On("List", mock.Anything, int64(1)).Return([]invoice.Invoice{
		inv(invoice.StatusPaid, "100"),
		inv(invoice.StatusViewed, "10"),
	}, nil)
	projects.On("List", mock.Anything, int64(1)).Return([]project.Project{{Status: project.StatusInProgress}}, nil)

	svc := dashboard.NewService(invoices, projects, nil)
	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "100", stats.TotalRevenue.String())
	require.Equal(t, 1, stats.PendingInvoices)
	require.Equal(t, 1, stats.ActiveProjects)
}

func TestService_StatsPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	invoices := &mocks.InvoiceRepository{}
	projects := &mocks.ProjectRepository{}

	boom := errors.New("boom")
	invoices.On("List", mock.Anything, int64(1)).Return(nil, boom)
	projects.On("List", mock.Anything, int64(1)).Return([]project.Project{}, nil).Maybe()

	svc := dashboard.NewService(invoices, projects, nil)
	_, err := svc.Stats(ctx, 1)
	require.ErrorIs(t, err, boom)
}

func TestService_InvoiceStatusBreakdown(t *testing.T) {
	ctx := context.Background()
	invoices := &mocks.InvoiceRepository{}

	invoices.On("List", ctx, int64(1)).Return([]invoice.Invoice{
		inv(invoice.StatusPaid, "1"),
		inv(invoice.StatusDraft, "1"),
		inv(invoice.StatusPaid, "1"),
	}, nil)

	svc := dashboard.NewService(invoices, &mocks.ProjectRepository{}, nil)
	breakdown, err := svc.InvoiceStatusBreakdown(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []dashboard.StatusCount{
		{Status: invoice.StatusDraft, Count: 1},
		{Status: invoice.StatusPaid, Count: 2},
	}, breakdown)
}
