// Package activity implements the flat activity log as a whole-file JSON
// document. The log is append-only; individual records are never updated or
// removed.
package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides activity log persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path    string
	records []domain.ActivityRecord
}

// document is the on-disk shape of the log.
type document struct {
	Records []activityRec `json:"records"`
}

type activityRec struct {
	ID         uuid.UUID `json:"id"`
	Actor      string    `json:"actor"`
	EntityType string    `json:"entity_type"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Open loads the log at path. A missing file starts an empty log. On a
// corrupt or unreadable file Open still returns a usable empty log together
// with a *domain.PersistenceError, so the caller can warn and continue.
func Open(path string) (*Repo, error) {
	r := &Repo{path: path}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	r.records = make([]domain.ActivityRecord, len(doc.Records))
	for i, rec := range doc.Records {
		r.records[i] = domain.ActivityRecord{
			ID:         rec.ID,
			Actor:      rec.Actor,
			EntityType: domain.EntityType(rec.EntityType),
			Action:     domain.Action(rec.Action),
			Detail:     rec.Detail,
			CreatedAt:  rec.CreatedAt,
		}
	}

	return r, nil
}

// save writes the full log to the store file.
func (r *Repo) save() error {
	doc := document{Records: make([]activityRec, len(r.records))}
	for i, rec := range r.records {
		doc.Records[i] = activityRec{
			ID:         rec.ID,
			Actor:      rec.Actor,
			EntityType: rec.EntityType.String(),
			Action:     rec.Action.String(),
			Detail:     rec.Detail,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return jsonfile.Save(r.path, doc)
}

// Log appends a record and persists the log in one step.
func (r *Repo) Log(rec domain.ActivityRecord) error {
	r.records = append(r.records, rec)
	return r.save()
}

// List returns records newest-first. A limit <= 0 returns all records.
func (r *Repo) List(limit int) []domain.ActivityRecord {
	n := len(r.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.ActivityRecord, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.records[n-1-i]
	}
	return out
}

// Len returns the number of records in the log.
func (r *Repo) Len() int { return len(r.records) }
