package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *sdkmcp.Server, svc Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_clients",
		Description: "Lists the signed-in user's clients with contact details",
	}, listClientsHandler(svc.Clients))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "Lists projects with status, progress and budget",
	}, listProjectsHandler(svc.Projects))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_invoices",
		Description: "Lists invoices with number, status, dates and total",
	}, listInvoicesHandler(svc.Invoices))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_stats",
		Description: "Summarizes paid revenue, pending invoices and active projects",
	}, dashboardStatsHandler(svc.Dashboard))
}

func listClientsHandler(clients ClientLister) sdkmcp.ToolHandlerFor[ListParams, ClientList] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListParams) (*sdkmcp.CallToolResult, ClientList, error) {
		userID, ok := getUserID(ctx)
		if !ok {
			return nil, ClientList{}, errUnauthorized
		}
		list, err := clients.List(ctx, userID)
		if err != nil {
			return nil, ClientList{}, MapError(err)
		}
		return nil, toClientList(list), nil
	}
}

func listProjectsHandler(projects ProjectLister) sdkmcp.ToolHandlerFor[ListParams, ProjectList] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListParams) (*sdkmcp.CallToolResult, ProjectList, error) {
		userID, ok := getUserID(ctx)
		if !ok {
			return nil, ProjectList{}, errUnauthorized
		}
		list, err := projects.List(ctx, userID)
		if err != nil {
			return nil, ProjectList{}, MapError(err)
		}
		return nil, toProjectList(list), nil
	}
}

func listInvoicesHandler(invoices InvoiceLister) sdkmcp.ToolHandlerFor[ListParams, InvoiceList] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListParams) (*sdkmcp.CallToolResult, InvoiceList, error) {
		userID, ok := getUserID(ctx)
		if !ok {
			return nil, InvoiceList{}, errUnauthorized
		}
		list, err := invoices.List(ctx, userID)
		if err != nil {
			return nil, InvoiceList{}, MapError(err)
		}
		return nil, toInvoiceList(list), nil
	}
}

func dashboardStatsHandler(dashboard StatsReader) sdkmcp.ToolHandlerFor[ListParams, DashboardStats] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListParams) (*sdkmcp.CallToolResult, DashboardStats, error) {
		userID, ok := getUserID(ctx)
		if !ok {
			return nil, DashboardStats{}, errUnauthorized
		}
		stats, err := dashboard.Stats(ctx, userID)
		if err != nil {
			return nil, DashboardStats{}, MapError(err)
		}
		return nil, toDashboardStats(stats), nil
	}
}
