// Package app wires the store, domain services, sessions and procedure
// router into one application.
package app

import (
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/domain/bid"
	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/domain/dashboard"
	"github.com/rpggio/tradeledger/internal/domain/doctemplate"
	"github.com/rpggio/tradeledger/internal/domain/invoice"
	"github.com/rpggio/tradeledger/internal/domain/jobcost"
	"github.com/rpggio/tradeledger/internal/domain/notification"
	"github.com/rpggio/tradeledger/internal/domain/payment"
	"github.com/rpggio/tradeledger/internal/domain/photo"
	"github.com/rpggio/tradeledger/internal/domain/project"
	"github.com/rpggio/tradeledger/internal/domain/recurring"
	"github.com/rpggio/tradeledger/internal/domain/settings"
	"github.com/rpggio/tradeledger/internal/domain/team"
	"github.com/rpggio/tradeledger/internal/domain/timeentry"
	"github.com/rpggio/tradeledger/internal/domain/timeline"
	"github.com/rpggio/tradeledger/internal/domain/user"
	"github.com/rpggio/tradeledger/internal/rpc"
	"github.com/rpggio/tradeledger/internal/store"
)

// Options configures the application.
type Options struct {
	OwnerOpenID   string
	TokenSecret   string
	TokenTTL      time.Duration
	Revoker       auth.Revoker
	DegradedReads bool
	Observer      rpc.Observer
	Logger        *slog.Logger
}

// App is the assembled application.
type App struct {
	Users         *user.Service
	Tokens        *auth.TokenManager
	Authenticator *auth.Authenticator
	Services      rpc.Services
	Router        *rpc.Router
}

// New builds every service on top of db.
func New(db *store.DB, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	revoker := opts.Revoker
	if revoker == nil {
		revoker = auth.NewMemoryRevoker()
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 365 * 24 * time.Hour
	}

	users := user.NewService(store.NewUserRepository(db), opts.OwnerOpenID, logger)
	tokens := auth.NewTokenManager(opts.TokenSecret, ttl)
	authn := auth.NewAuthenticator(tokens, revoker, users, logger)

	settingsSvc := settings.NewService(store.NewSettingsRepository(db), logger)
	projects := project.NewService(store.NewProjectRepository(db), logger)
	invoices := invoice.NewService(store.NewInvoiceRepository(db), settingsSvc, logger)

	services := rpc.Services{
		Sessions:      authn,
		Settings:      settingsSvc,
		Clients:       client.NewService(store.NewClientRepository(db), logger),
		Projects:      projects,
		Invoices:      invoices,
		Bids:          bid.NewService(store.NewBidRepository(db), settingsSvc, logger),
		Payments:      payment.NewService(store.NewPaymentRepository(db), logger),
		TimeEntries:   timeentry.NewService(store.NewTimeEntryRepository(db), logger),
		Photos:        photo.NewService(store.NewPhotoRepository(db), logger),
		Timeline:      timeline.NewService(store.NewTimelineRepository(db), logger),
		Recurring:     recurring.NewService(store.NewRecurringRepository(db), logger),
		JobCosts:      jobcost.NewService(store.NewJobCostRepository(db), logger),
		Team:          team.NewService(store.NewTeamRepository(db), logger),
		Templates:     doctemplate.NewService(store.NewTemplateRepository(db), logger),
		Notifications: notification.NewService(store.NewNotificationRepository(db), logger),
		Dashboard:     dashboard.NewService(invoices, projects, logger),
	}

	router := rpc.NewAppRouter(services, rpc.Options{
		DegradedReads: opts.DegradedReads,
		Logger:        logger,
		Observer:      opts.Observer,
	})

	return &App{
		Users:         users,
		Tokens:        tokens,
		Authenticator: authn,
		Services:      services,
		Router:        router,
	}
}
