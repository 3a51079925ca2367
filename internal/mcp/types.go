package mcp

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/domain/dashboard"
	"github.com/rpggio/tradeledger/internal/domain/invoice"
	"github.com/rpggio/tradeledger/internal/domain/project"
)

const dateLayout = "2006-01-02"

// ListParams is the (empty) input of the list tools.
type ListParams struct{}

type ClientSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
}

type ClientList struct {
	Clients []ClientSummary `json:"clients"`
}

type ProjectSummary struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int64  `json:"progress"`
	Budget   string `json:"budget,omitempty"`
	EndDate  string `json:"end_date,omitempty"`
}

type ProjectList struct {
	Projects []ProjectSummary `json:"projects"`
}

type InvoiceSummary struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"client_id"`
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date,omitempty"`
	Total         string `json:"total"`
}

type InvoiceList struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// DashboardStats mirrors dashboard.stats with revenue as a decimal string.
type DashboardStats struct {
	TotalRevenue    string `json:"total_revenue"`
	PendingInvoices int    `json:"pending_invoices"`
	ActiveProjects  int    `json:"active_projects"`
}

func toClientList(clients []client.Client) ClientList {
	out := ClientList{Clients: make([]ClientSummary, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, ClientSummary{
			ID:    c.ID,
			Name:  c.Name,
			Email: deref(c.Email),
			Phone: deref(c.Phone),
			City:  deref(c.City),
		})
	}
	return out
}

func toProjectList(projects []project.Project) ProjectList {
	out := ProjectList{Projects: make([]ProjectSummary, 0, len(projects))}
	for _, p := range projects {
		summary := ProjectSummary{
			ID:       p.ID,
			ClientID: p.ClientID,
			Name:     p.Name,
			Status:   string(p.Status),
			Progress: p.Progress,
			EndDate:  formatDate(p.EndDate),
		}
		if p.Budget.Valid {
			summary.Budget = p.Budget.Decimal.String()
		}
		out.Projects = append(out.Projects, summary)
	}
	return out
}

func toInvoiceList(invoices []invoice.Invoice) InvoiceList {
	out := InvoiceList{Invoices: make([]InvoiceSummary, 0, len(invoices))}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, InvoiceSummary{
			ID:            inv.ID,
			ClientID:      inv.ClientID,
			InvoiceNumber: inv.InvoiceNumber,
			Status:        string(inv.Status),
			IssueDate:     inv.IssueDate.Format(dateLayout),
			DueDate:       formatDate(inv.DueDate),
			Total:         inv.Total.String(),
		})
	}
	return out
}

func toDashboardStats(stats *dashboard.Stats) DashboardStats {
	if stats == nil {
		return DashboardStats{TotalRevenue: decimal.Zero.String()}
	}
	return DashboardStats{
		TotalRevenue:    stats.TotalRevenue.String(),
		PendingInvoices: stats.PendingInvoices,
		ActiveProjects:  stats.ActiveProjects,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
