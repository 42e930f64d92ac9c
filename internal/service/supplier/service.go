package supplier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// supplierRepo defines the registry interface needed by the service.
type supplierRepo interface {
	Upsert(s domain.Supplier) (domain.Supplier, error)
	Remove(name string) error
	List() []domain.Supplier
	Save() error
}

// activityLogger defines the activity log interface needed by the service.
type activityLogger interface {
	Log(rec domain.ActivityRecord) error
}

// Service manages the supplier registry.
type Service struct {
	suppliers supplierRepo
	activity  activityLogger
	log       *slog.Logger
}

// NewService creates a new supplier service.
func NewService(log *slog.Logger, suppliers supplierRepo, activity activityLogger) *Service {
	return &Service{
		suppliers: suppliers,
		activity:  activity,
		log:       log.With("service", "supplier"),
	}
}

// recordActivity writes an activity record. Failures are logged, not returned.
func (s *Service) recordActivity(ctx context.Context, action domain.Action, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: domain.EntityTypeSupplier,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.activity.Log(rec); err != nil {
		s.log.WarnContext(ctx, "activity record failed", slog.String("error", err.Error()))
	}
}
