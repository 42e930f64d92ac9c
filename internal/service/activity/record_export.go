package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// RecordExport writes an EXPORT record for the given entity kind. Failures
// are logged, not returned: the export itself has already succeeded.
func (s *Service) RecordExport(ctx context.Context, entity domain.EntityType, detail string) {
	rec := domain.ActivityRecord{
		ID:         uuid.New(),
		Actor:      ctxutil.ActorOrDefault(ctx),
		EntityType: entity,
		Action:     domain.ActionExport,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.records.Log(rec); err != nil {
		s.log.WarnContext(ctx, "record activity", slog.String("error", err.Error()))
	}
}
