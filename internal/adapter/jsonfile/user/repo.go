// Package user implements the user accounts store as a whole-file JSON
// document. Usernames are unique under case-insensitive comparison.
package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides user account persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path   string
	users  []domain.User
	byName map[string]int
}

// document is the on-disk shape of the store.
type document struct {
	Users []userRec `json:"users"`
}

type userRec struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Open loads the store at path. A missing file starts an empty store. On a
// corrupt or unreadable file Open still returns a usable empty store together
// with a *domain.PersistenceError, so the caller can warn and continue.
func Open(path string) (*Repo, error) {
	r := &Repo{
		path:   path,
		byName: make(map[string]int),
	}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	for _, rec := range doc.Users {
		key := domain.NormalizeName(rec.Username)
		if key == "" {
			continue
		}
		if _, ok := r.byName[key]; ok {
			continue
		}
		r.byName[key] = len(r.users)
		r.users = append(r.users, domain.User{
			ID:           rec.ID,
			Username:     rec.Username,
			PasswordHash: rec.PasswordHash,
			Role:         domain.Role(rec.Role),
			CreatedAt:    rec.CreatedAt,
		})
	}

	return r, nil
}

// Save writes the full store to the store file.
func (r *Repo) Save() error {
	doc := document{Users: make([]userRec, len(r.users))}
	for i, u := range r.users {
		doc.Users[i] = userRec{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			Role:         u.Role.String(),
			CreatedAt:    u.CreatedAt,
		}
	}
	return jsonfile.Save(r.path, doc)
}

// Create inserts a new user.
// Returns domain.ErrAlreadyExists if the username is taken (case-insensitive)
// and a validation error on malformed records.
func (r *Repo) Create(u domain.User) (domain.User, error) {
	key := domain.NormalizeName(u.Username)

	var errs []domain.FieldError
	if key == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if u.PasswordHash == "" {
		errs = append(errs, domain.FieldError{Field: "password_hash", Message: "required"})
	}
	if !u.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if len(errs) > 0 {
		return domain.User{}, domain.NewValidationErrors(errs)
	}

	if _, ok := r.byName[key]; ok {
		return domain.User{}, fmt.Errorf("user %q: %w", u.Username, domain.ErrAlreadyExists)
	}

	r.byName[key] = len(r.users)
	r.users = append(r.users, u)
	return u, nil
}

// GetByUsername returns the user with the given name (case-insensitive).
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByUsername(name string) (domain.User, error) {
	pos, ok := r.byName[domain.NormalizeName(name)]
	if !ok {
		return domain.User{}, fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
	}
	return r.users[pos], nil
}

// SetPasswordHash replaces the stored hash for the given user.
// Returns domain.ErrNotFound if absent.
func (r *Repo) SetPasswordHash(name, hash string) error {
	pos, ok := r.byName[domain.NormalizeName(name)]
	if !ok {
		return fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
	}
	r.users[pos].PasswordHash = hash
	return nil
}

// Delete removes the user with the given name (case-insensitive).
// Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(name string) error {
	key := domain.NormalizeName(name)
	pos, ok := r.byName[key]
	if !ok {
		return fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
	}

	r.users = append(r.users[:pos], r.users[pos+1:]...)
	delete(r.byName, key)
	for i := pos; i < len(r.users); i++ {
		r.byName[domain.NormalizeName(r.users[i].Username)] = i
	}

	return nil
}

// List returns a copy of all users in insertion order.
func (r *Repo) List() []domain.User {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

// CountByRole returns the number of users holding the given role.
func (r *Repo) CountByRole(role domain.Role) int {
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n
}

// Len returns the number of user accounts.
func (r *Repo) Len() int { return len(r.users) }
