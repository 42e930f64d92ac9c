package inventory

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// itemRepo defines the inventory store interface needed by the service.
type itemRepo interface {
	Add(item domain.Item) (domain.Item, error)
	Get(id int64) (domain.Item, error)
	Update(id int64, upd domain.ItemUpdate) (domain.Item, error)
	Remove(id int64) error
	All() iter.Seq[domain.Item]
	List() []domain.Item
	Save() error
}

// activityLogger defines the activity log interface needed by the service.
type activityLogger interface {
	Log(rec domain.ActivityRecord) error
}

// Service provides inventory management operations.
type Service struct {
	items    itemRepo
	activity activityLogger
	log      *slog.Logger
}

// NewService creates a new inventory service.
func NewService(log *slog.Logger, items itemRepo, activity activityLogger) *Service {
	return &Service{
		items:    items,
		activity: activity,
		log:      log.With("service", "inventory"),
	}
}

// recordActivity writes an activity record. Failures are logged, not returned:
// the mutation itself has already been persisted.
func (s *Service) recordActivity(ctx context.Context, action domain.Action, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: domain.EntityTypeItem,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.activity.Log(rec); err != nil {
		s.log.WarnContext(ctx, "activity record failed", slog.String("error", err.Error()))
	}
}
