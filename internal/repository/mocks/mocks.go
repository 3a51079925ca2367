package mocks

import (
	"context"

	"github.com/rpggio/tradeledger/internal/domain/bid"
	"github.com/rpggio/tradeledger/internal/domain/client"
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
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Upsert(ctx context.Context, in user.Upsert) (*user.User, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*user.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*user.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByOpenID(ctx context.Context, openID string) (*user.User, error) {
	args := m.Called(ctx, openID)
	if v, ok := args.Get(0).(*user.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// SettingsRepository is a mock for settings.Repository.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context, userID int64) (*settings.BusinessSettings, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*settings.BusinessSettings); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SettingsRepository) CreateIfMissing(ctx context.Context, bs *settings.BusinessSettings) error {
	args := m.Called(ctx, bs)
	return args.Error(0)
}

func (m *SettingsRepository) Update(ctx context.Context, userID int64, patch settings.Patch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *SettingsRepository) Advance(ctx context.Context, userID int64, seq settings.Sequence) (string, int64, error) {
	args := m.Called(ctx, userID, seq)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

// Numberer is a mock for the document numbering dependency of invoice and bid services.
type Numberer struct {
	mock.Mock
}

func (m *Numberer) NextNumber(ctx context.Context, userID int64, seq settings.Sequence) (string, error) {
	args := m.Called(ctx, userID, seq)
	return args.String(0), args.Error(1)
}

// ClientRepository is a mock for client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) List(ctx context.Context, userID int64) ([]client.Client, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Get(ctx context.Context, userID, id int64) (*client.Client, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*client.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, userID, id int64, patch client.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) List(ctx context.Context, userID int64) ([]project.Project, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, userID, id int64) (*project.Project, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*project.Project); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, userID, id int64, patch project.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// InvoiceRepository is a mock for invoice.Repository.
type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) List(ctx context.Context, userID int64) ([]invoice.Invoice, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]invoice.Invoice); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) Get(ctx context.Context, userID, id int64) (*invoice.Invoice, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*invoice.Invoice); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *InvoiceRepository) Update(ctx context.Context, userID, id int64, patch invoice.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *InvoiceRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *InvoiceRepository) ListItems(ctx context.Context, userID, invoiceID int64) ([]invoice.Item, error) {
	args := m.Called(ctx, userID, invoiceID)
	if list, ok := args.Get(0).([]invoice.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) AddItem(ctx context.Context, item *invoice.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *InvoiceRepository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

// BidRepository is a mock for bid.Repository.
type BidRepository struct {
	mock.Mock
}

func (m *BidRepository) List(ctx context.Context, userID int64) ([]bid.Bid, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]bid.Bid); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BidRepository) Get(ctx context.Context, userID, id int64) (*bid.Bid, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*bid.Bid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BidRepository) Update(ctx context.Context, userID, id int64, patch bid.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *BidRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *BidRepository) ListItems(ctx context.Context, userID, bidID int64) ([]bid.Item, error) {
	args := m.Called(ctx, userID, bidID)
	if list, ok := args.Get(0).([]bid.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BidRepository) AddItem(ctx context.Context, item *bid.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *BidRepository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

// PaymentRepository is a mock for payment.Repository.
type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) List(ctx context.Context, userID int64) ([]payment.Payment, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]payment.Payment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentRepository) ListByInvoice(ctx context.Context, userID, invoiceID int64) ([]payment.Payment, error) {
	args := m.Called(ctx, userID, invoiceID)
	if list, ok := args.Get(0).([]payment.Payment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PaymentRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// TimeEntryRepository is a mock for timeentry.Repository.
type TimeEntryRepository struct {
	mock.Mock
}

func (m *TimeEntryRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]timeentry.TimeEntry, error) {
	args := m.Called(ctx, userID, projectID)
	if list, ok := args.Get(0).([]timeentry.TimeEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimeEntryRepository) Create(ctx context.Context, e *timeentry.TimeEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *TimeEntryRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// PhotoRepository is a mock for photo.Repository.
type PhotoRepository struct {
	mock.Mock
}

func (m *PhotoRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]photo.Photo, error) {
	args := m.Called(ctx, userID, projectID)
	if list, ok := args.Get(0).([]photo.Photo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PhotoRepository) Create(ctx context.Context, p *photo.Photo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PhotoRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// TimelineRepository is a mock for timeline.Repository.
type TimelineRepository struct {
	mock.Mock
}

func (m *TimelineRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]timeline.Event, error) {
	args := m.Called(ctx, userID, projectID)
	if list, ok := args.Get(0).([]timeline.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimelineRepository) Create(ctx context.Context, e *timeline.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *TimelineRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// RecurringRepository is a mock for recurring.Repository.
type RecurringRepository struct {
	mock.Mock
}

func (m *RecurringRepository) List(ctx context.Context, userID int64) ([]recurring.Invoice, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]recurring.Invoice); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecurringRepository) Get(ctx context.Context, userID, id int64) (*recurring.Invoice, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*recurring.Invoice); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecurringRepository) Create(ctx context.Context, inv *recurring.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *RecurringRepository) Update(ctx context.Context, userID, id int64, patch recurring.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *RecurringRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// JobCostRepository is a mock for jobcost.Repository.
type JobCostRepository struct {
	mock.Mock
}

func (m *JobCostRepository) List(ctx context.Context, userID int64) ([]jobcost.JobCost, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]jobcost.JobCost); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobCostRepository) Get(ctx context.Context, userID, id int64) (*jobcost.JobCost, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*jobcost.JobCost); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobCostRepository) Create(ctx context.Context, c *jobcost.JobCost) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *JobCostRepository) Update(ctx context.Context, userID, id int64, patch jobcost.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *JobCostRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *JobCostRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]jobcost.JobCost, error) {
	args := m.Called(ctx, userID, projectID)
	if list, ok := args.Get(0).([]jobcost.JobCost); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TeamRepository is a mock for team.Repository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) List(ctx context.Context, userID int64) ([]team.Member, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]team.Member); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) Get(ctx context.Context, userID, id int64) (*team.Member, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*team.Member); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) Create(ctx context.Context, member *team.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *TeamRepository) Update(ctx context.Context, userID, id int64, patch team.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *TeamRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// TemplateRepository is a mock for doctemplate.Repository.
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) List(ctx context.Context, userID int64) ([]doctemplate.Template, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]doctemplate.Template); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) Get(ctx context.Context, userID, id int64) (*doctemplate.Template, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*doctemplate.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) Create(ctx context.Context, t *doctemplate.Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TemplateRepository) Update(ctx context.Context, userID, id int64, patch doctemplate.Patch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *TemplateRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// NotificationRepository is a mock for notification.Repository.
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) List(ctx context.Context, userID int64) ([]notification.Notification, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]notification.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
