package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/config"
	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// userRepo defines the user store interface needed by the auth service.
type userRepo interface {
	Create(u domain.User) (domain.User, error)
	GetByUsername(name string) (domain.User, error)
	SetPasswordHash(name, hash string) error
	Delete(name string) error
	List() []domain.User
	CountByRole(role domain.Role) int
	Len() int
	Save() error
}

// activityLogger defines the activity log interface needed by the auth service.
type activityLogger interface {
	Log(rec domain.ActivityRecord) error
}

// Service provides local user accounts and password authentication.
type Service struct {
	users    userRepo
	activity activityLogger
	cfg      config.AuthConfig
	log      *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, activity activityLogger, cfg config.AuthConfig) *Service {
	return &Service{
		users:    users,
		activity: activity,
		cfg:      cfg,
		log:      log.With("service", "auth"),
	}
}

// recordActivity writes an activity record. Failures are logged, not returned.
func (s *Service) recordActivity(ctx context.Context, action domain.Action, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: domain.EntityTypeUser,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.activity.Log(rec); err != nil {
		s.log.WarnContext(ctx, "activity record failed", slog.String("error", err.Error()))
	}
}
