package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one entry in the flat activity history. The list is
// append-only; records are never updated or removed individually.
type ActivityRecord struct {
	ID         uuid.UUID
	Actor      string
	EntityType EntityType
	Action     Action
	Detail     string
	CreatedAt  time.Time
}
