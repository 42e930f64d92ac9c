package activity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// activityRepo defines the log store interface needed by the service.
type activityRepo interface {
	Log(rec domain.ActivityRecord) error
	List(limit int) []domain.ActivityRecord
}

// Service exposes the activity log.
type Service struct {
	records activityRepo
	log     *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, records activityRepo) *Service {
	return &Service{
		records: records,
		log:     log.With("service", "activity"),
	}
}

// ListActivity returns log records newest-first. A limit <= 0 returns all.
func (s *Service) ListActivity(ctx context.Context, limit int) []domain.ActivityRecord {
	return s.records.List(limit)
}
