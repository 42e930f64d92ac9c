package prefs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// prefsRepo defines the preferences store interface needed by the service.
type prefsRepo interface {
	Get() domain.Preferences
	Set(p domain.Preferences) error
	Save() error
}

// activityLogger defines the activity log interface needed by the service.
type activityLogger interface {
	Log(rec domain.ActivityRecord) error
}

// Service manages application preferences.
type Service struct {
	prefs    prefsRepo
	activity activityLogger
	log      *slog.Logger
}

// NewService creates a new preferences service.
func NewService(log *slog.Logger, prefs prefsRepo, activity activityLogger) *Service {
	return &Service{
		prefs:    prefs,
		activity: activity,
		log:      log.With("service", "prefs"),
	}
}

// recordActivity writes an activity record. Failures are logged, not returned.
func (s *Service) recordActivity(ctx context.Context, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: domain.EntityTypePrefs,
		Action:     domain.ActionUpdate,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.activity.Log(rec); err != nil {
		s.log.WarnContext(ctx, "activity record failed", slog.String("error", err.Error()))
	}
}
