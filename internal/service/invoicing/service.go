package invoicing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// stockRepo defines the inventory store interface needed by the service.
type stockRepo interface {
	Get(id int64) (domain.Item, error)
	AdjustQuantity(id, delta int64) (domain.Item, error)
	Save() error
}

// historyRepo defines the invoice history interface needed by the service.
type historyRepo interface {
	NextNumber() int64
	Append(inv domain.Invoice) error
	Get(number int64) (domain.Invoice, error)
	List(filter domain.InvoiceFilter) []domain.Invoice
	Save() error
}

// supplierRegistry defines the supplier registry interface needed by the service.
type supplierRegistry interface {
	Upsert(s domain.Supplier) (domain.Supplier, error)
	Save() error
}

// activityLogger defines the activity log interface needed by the service.
type activityLogger interface {
	Log(rec domain.ActivityRecord) error
}

// Service builds invoices against the inventory and records them in history.
type Service struct {
	stock     stockRepo
	history   historyRepo
	suppliers supplierRegistry
	activity  activityLogger
	log       *slog.Logger
}

// NewService creates a new invoicing service.
func NewService(
	log *slog.Logger,
	stock stockRepo,
	history historyRepo,
	suppliers supplierRegistry,
	activity activityLogger,
) *Service {
	return &Service{
		stock:     stock,
		history:   history,
		suppliers: suppliers,
		activity:  activity,
		log:       log.With("service", "invoicing"),
	}
}

// recordActivity writes an activity record. Failures are logged, not returned:
// the invoice itself has already been persisted.
func (s *Service) recordActivity(ctx context.Context, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: domain.EntityTypeInvoice,
		Action:     domain.ActionCreate,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.activity.Log(rec); err != nil {
		s.log.WarnContext(ctx, "activity record failed", slog.String("error", err.Error()))
	}
}
