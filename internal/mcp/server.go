// Package mcp exposes read-only business data to AI assistants over the
// Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/domain/dashboard"
	"github.com/rpggio/tradeledger/internal/domain/invoice"
	"github.com/rpggio/tradeledger/internal/domain/project"
	"github.com/rpggio/tradeledger/internal/domain/user"
)

const serverInstructions = `tradeledger holds a small trade business's books: clients, projects and invoices.

All tools are read-only and scoped to the signed-in account.
- list_clients: who the business works for.
- list_projects: jobs with status (planning, in_progress, on_hold, completed, cancelled) and progress.
- list_invoices: invoice numbers, status (draft, sent, viewed, partially_paid, paid, overdue, cancelled), dates and totals.
- dashboard_stats: revenue from paid invoices, count of sent or viewed invoices, in-progress projects.

Amounts are decimal strings. Dates are YYYY-MM-DD.`

type ClientLister interface {
	List(ctx context.Context, userID int64) ([]client.Client, error)
}

type ProjectLister interface {
	List(ctx context.Context, userID int64) ([]project.Project, error)
}

type InvoiceLister interface {
	List(ctx context.Context, userID int64) ([]invoice.Invoice, error)
}

type StatsReader interface {
	Stats(ctx context.Context, userID int64) (*dashboard.Stats, error)
}

// Services contains the domain services the tools read from.
type Services struct {
	Clients   ClientLister
	Projects  ProjectLister
	Invoices  InvoiceLister
	Dashboard StatsReader
}

// OwnerUsers resolves the owner account in stdio mode.
type OwnerUsers interface {
	Upsert(ctx context.Context, req user.UpsertRequest) (*user.User, error)
}

// SessionAuthenticator resolves session tokens in HTTP mode.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Users         OwnerUsers
	OwnerOpenID   string
	Authenticator SessionAuthenticator
	CookieName    string
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates an MCP server with the read-only tools and identity
// middleware for the configured transport.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "tradeledger",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	// Later middleware wraps earlier middleware, so identity is resolved
	// before the traffic logger sees the request.
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	// stdio is a local process launched by the owner; HTTP callers carry a session.
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(ownerMiddleware(newOwnerIdentity(cfg.Users, cfg.OwnerOpenID)))
	} else {
		server.AddReceivingMiddleware(sessionMiddleware(cfg.Authenticator, cfg.CookieName))
	}

	registerTools(server, cfg.Services)

	return server
}
