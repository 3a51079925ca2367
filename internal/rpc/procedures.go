package rpc

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/domain/bid"
	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/domain/dashboard"
	"github.com/rpggio/tradeledger/internal/domain/doctemplate"
	"github.com/rpggio/tradeledger/internal/domain/input"
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
)

// SessionEnder ends the caller's session.
type SessionEnder interface {
	Logout(ctx context.Context, s *auth.Session) error
}

// Services are the domain services behind the procedures.
type Services struct {
	Sessions      SessionEnder
	Settings      *settings.Service
	Clients       *client.Service
	Projects      *project.Service
	Invoices      *invoice.Service
	Bids          *bid.Service
	Payments      *payment.Service
	TimeEntries   *timeentry.Service
	Photos        *photo.Service
	Timeline      *timeline.Service
	Recurring     *recurring.Service
	JobCosts      *jobcost.Service
	Team          *team.Service
	Templates     *doctemplate.Service
	Notifications *notification.Service
	Dashboard     *dashboard.Service
}

// NoParams accepts any (or no) params object.
type NoParams struct{}

// IDParams addresses a single row.
type IDParams struct {
	ID int64 `json:"id"`
}

// ProjectParams addresses the records of a project.
type ProjectParams struct {
	ProjectID int64 `json:"projectId"`
}

// InvoiceParams addresses the children of an invoice.
type InvoiceParams struct {
	InvoiceID int64 `json:"invoiceId"`
}

// BidParams addresses the children of a bid.
type BidParams struct {
	BidID int64 `json:"bidId"`
}

// Success acknowledges a mutation without a row result.
type Success struct {
	Success bool `json:"success"`
}

// MarkAllResult reports how many notifications were marked read.
type MarkAllResult struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

var succeeded = Success{Success: true}

// NewAppRouter registers the full procedure surface.
func NewAppRouter(svc Services, opts Options) *Router {
	r := NewRouter(opts)

	registerAuth(r, svc)
	registerSettings(r, svc)
	registerClients(r, svc)
	registerProjects(r, svc)
	registerInvoices(r, svc)
	registerBids(r, svc)
	registerPayments(r, svc)
	registerProjectRecords(r, svc)
	registerRecurring(r, svc)
	registerJobCosts(r, svc)
	registerTeam(r, svc)
	registerTemplates(r, svc)
	registerNotifications(r, svc)
	registerDashboard(r, svc)

	return r
}

func registerAuth(r *Router, svc Services) {
	Query(r, "auth.me", (*user.User)(nil), func(_ context.Context, call Call, _ NoParams) (*user.User, error) {
		if call.Session == nil {
			return nil, nil
		}
		return call.Session.User, nil
	}, Public())

	Mutation(r, "auth.logout", func(ctx context.Context, call Call, _ NoParams) (Success, error) {
		if call.Session != nil {
			if err := svc.Sessions.Logout(ctx, call.Session); err != nil {
				return Success{}, err
			}
		}
		return succeeded, nil
	}, Public())
}

func registerSettings(r *Router, svc Services) {
	Query(r, "businessSettings.get", (*settings.BusinessSettings)(nil),
		func(ctx context.Context, call Call, _ NoParams) (*settings.BusinessSettings, error) {
			return svc.Settings.Get(ctx, call.UserID())
		})
	Mutation(r, "businessSettings.update", mutate(svc.Settings.Update))
}

func registerClients(r *Router, svc Services) {
	Query(r, "clients.list", []client.Client{}, list(svc.Clients.List))
	Query(r, "clients.get", (*client.Client)(nil), byID(svc.Clients.Get))
	Mutation(r, "clients.create", mutate(svc.Clients.Create))
	Mutation(r, "clients.update", mutate(svc.Clients.Update))
	Mutation(r, "clients.delete", remove(svc.Clients.Delete))
}

func registerProjects(r *Router, svc Services) {
	statuses := Enum("status", input.Values(project.Statuses))

	Query(r, "projects.list", []project.Project{}, list(svc.Projects.List))
	Query(r, "projects.get", (*project.Project)(nil), byID(svc.Projects.Get))
	Mutation(r, "projects.create", mutate(svc.Projects.Create), statuses)
	Mutation(r, "projects.update", mutate(svc.Projects.Update), statuses)
	Mutation(r, "projects.delete", remove(svc.Projects.Delete))
}

func registerInvoices(r *Router, svc Services) {
	statuses := Enum("status", input.Values(invoice.Statuses))

	Query(r, "invoices.list", []invoice.Invoice{}, list(svc.Invoices.List))
	Query(r, "invoices.get", (*invoice.Invoice)(nil), byID(svc.Invoices.Get))
	Mutation(r, "invoices.create", mutate(svc.Invoices.Create), statuses)
	Mutation(r, "invoices.update", mutate(svc.Invoices.Update), statuses)
	Mutation(r, "invoices.delete", remove(svc.Invoices.Delete))
	Query(r, "invoices.items", []invoice.Item{},
		func(ctx context.Context, call Call, p InvoiceParams) ([]invoice.Item, error) {
			return svc.Invoices.Items(ctx, call.UserID(), p.InvoiceID)
		})
	Mutation(r, "invoices.addItem", mutate(svc.Invoices.AddItem))
	Mutation(r, "invoices.removeItem", remove(svc.Invoices.RemoveItem))
}

func registerBids(r *Router, svc Services) {
	statuses := Enum("status", input.Values(bid.Statuses))

	Query(r, "bids.list", []bid.Bid{}, list(svc.Bids.List))
	Query(r, "bids.get", (*bid.Bid)(nil), byID(svc.Bids.Get))
	Mutation(r, "bids.create", mutate(svc.Bids.Create), statuses)
	Mutation(r, "bids.update", mutate(svc.Bids.Update), statuses)
	Mutation(r, "bids.delete", remove(svc.Bids.Delete))
	Query(r, "bids.items", []bid.Item{},
		func(ctx context.Context, call Call, p BidParams) ([]bid.Item, error) {
			return svc.Bids.Items(ctx, call.UserID(), p.BidID)
		})
	Mutation(r, "bids.addItem", mutate(svc.Bids.AddItem))
	Mutation(r, "bids.removeItem", remove(svc.Bids.RemoveItem))
}

func registerPayments(r *Router, svc Services) {
	Query(r, "payments.list", []payment.Payment{}, list(svc.Payments.List))
	Query(r, "payments.byInvoice", []payment.Payment{},
		func(ctx context.Context, call Call, p InvoiceParams) ([]payment.Payment, error) {
			return svc.Payments.ByInvoice(ctx, call.UserID(), p.InvoiceID)
		})
	Mutation(r, "payments.create", mutate(svc.Payments.Create),
		Enum("paymentMethod", input.Values(payment.Methods)),
		Enum("status", input.Values(payment.Statuses)))
	Mutation(r, "payments.delete", remove(svc.Payments.Delete))
}

func registerProjectRecords(r *Router, svc Services) {
	Query(r, "timeEntries.byProject", []timeentry.TimeEntry{}, byProject(svc.TimeEntries.ByProject))
	Mutation(r, "timeEntries.create", mutate(svc.TimeEntries.Create))
	Mutation(r, "timeEntries.delete", remove(svc.TimeEntries.Delete))

	Query(r, "photos.byProject", []photo.Photo{}, byProject(svc.Photos.ByProject))
	Mutation(r, "photos.create", mutate(svc.Photos.Create))
	Mutation(r, "photos.delete", remove(svc.Photos.Delete))

	Query(r, "timeline.byProject", []timeline.Event{}, byProject(svc.Timeline.ByProject))
	Mutation(r, "timeline.create", mutate(svc.Timeline.Create))
	Mutation(r, "timeline.delete", remove(svc.Timeline.Delete))
}

func registerRecurring(r *Router, svc Services) {
	opts := []ProcedureOption{
		Enum("frequency", input.Values(recurring.Frequencies)),
		Enum("status", input.Values(recurring.Statuses)),
	}

	Query(r, "recurringInvoices.list", []recurring.Invoice{}, list(svc.Recurring.List))
	Mutation(r, "recurringInvoices.create", mutate(svc.Recurring.Create), opts...)
	Mutation(r, "recurringInvoices.update", mutate(svc.Recurring.Update), opts...)
	Mutation(r, "recurringInvoices.delete", remove(svc.Recurring.Delete))
}

func registerJobCosts(r *Router, svc Services) {
	categories := Enum("category", input.Values(jobcost.Categories))

	Query(r, "jobCosts.list", []jobcost.JobCost{}, list(svc.JobCosts.List))
	Query(r, "jobCosts.byProject", []jobcost.JobCost{}, byProject(svc.JobCosts.ByProject))
	Mutation(r, "jobCosts.create", mutate(svc.JobCosts.Create), categories)
	Mutation(r, "jobCosts.update", mutate(svc.JobCosts.Update), categories)
	Mutation(r, "jobCosts.delete", remove(svc.JobCosts.Delete))
}

func registerTeam(r *Router, svc Services) {
	roles := Enum("role", input.Values(team.Roles))

	Query(r, "teamMembers.list", []team.Member{}, list(svc.Team.List))
	Mutation(r, "teamMembers.create", mutate(svc.Team.Create), roles)
	Mutation(r, "teamMembers.update", mutate(svc.Team.Update), roles)
	Mutation(r, "teamMembers.delete", remove(svc.Team.Delete))
}

func registerTemplates(r *Router, svc Services) {
	types := Enum("type", input.Values(doctemplate.Types))

	Query(r, "templates.list", []doctemplate.Template{}, list(svc.Templates.List))
	Mutation(r, "templates.create", mutate(svc.Templates.Create), types)
	Mutation(r, "templates.update", mutate(svc.Templates.Update), types)
	Mutation(r, "templates.delete", remove(svc.Templates.Delete))
}

func registerNotifications(r *Router, svc Services) {
	Query(r, "notifications.list", []notification.Notification{}, list(svc.Notifications.List))
	Mutation(r, "notifications.create", mutate(svc.Notifications.Create))
	Mutation(r, "notifications.markAsRead", remove(svc.Notifications.MarkAsRead))
	Mutation(r, "notifications.markAllAsRead", func(ctx context.Context, call Call, _ NoParams) (MarkAllResult, error) {
		n, err := svc.Notifications.MarkAllAsRead(ctx, call.UserID())
		if err != nil {
			return MarkAllResult{}, err
		}
		return MarkAllResult{Success: true, Updated: n}, nil
	})
	Mutation(r, "notifications.delete", remove(svc.Notifications.Delete))
}

func registerDashboard(r *Router, svc Services) {
	Query(r, "dashboard.stats", &dashboard.Stats{TotalRevenue: decimal.Zero},
		func(ctx context.Context, call Call, _ NoParams) (*dashboard.Stats, error) {
			return svc.Dashboard.Stats(ctx, call.UserID())
		})
	Query(r, "dashboard.invoiceStatusBreakdown", []dashboard.StatusCount{},
		func(ctx context.Context, call Call, _ NoParams) ([]dashboard.StatusCount, error) {
			return svc.Dashboard.InvoiceStatusBreakdown(ctx, call.UserID())
		})
}

func list[R any](fn func(ctx context.Context, userID int64) ([]R, error)) Handler[NoParams, []R] {
	return func(ctx context.Context, call Call, _ NoParams) ([]R, error) {
		return fn(ctx, call.UserID())
	}
}

func byID[R any](fn func(ctx context.Context, userID, id int64) (R, error)) Handler[IDParams, R] {
	return func(ctx context.Context, call Call, p IDParams) (R, error) {
		return fn(ctx, call.UserID(), p.ID)
	}
}

func byProject[R any](fn func(ctx context.Context, userID, projectID int64) ([]R, error)) Handler[ProjectParams, []R] {
	return func(ctx context.Context, call Call, p ProjectParams) ([]R, error) {
		return fn(ctx, call.UserID(), p.ProjectID)
	}
}

func mutate[P, R any](fn func(ctx context.Context, userID int64, req P) (R, error)) Handler[P, R] {
	return func(ctx context.Context, call Call, p P) (R, error) {
		return fn(ctx, call.UserID(), p)
	}
}

func remove(fn func(ctx context.Context, userID, id int64) error) Handler[IDParams, Success] {
	return func(ctx context.Context, call Call, p IDParams) (Success, error) {
		if err := fn(ctx, call.UserID(), p.ID); err != nil {
			return Success{}, err
		}
		return succeeded, nil
	}
}
