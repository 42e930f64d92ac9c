// Package supplier implements the supplier registry as a whole-file JSON
// document. The registry is display-only: invoices reference suppliers by
// free-form name and never require an entry here.
package supplier

import (
	"fmt"
	"time"

	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides supplier persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path      string
	suppliers []domain.Supplier
	index     map[string]int
}

// document is the on-disk shape of the registry.
type document struct {
	Suppliers []supplierRec `json:"suppliers"`
}

type supplierRec struct {
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Open loads the registry at path. A missing file starts an empty registry.
// On a corrupt or unreadable file Open still returns a usable empty registry
// together with a *domain.PersistenceError, so the caller can warn and
// continue.
func Open(path string) (*Repo, error) {
	r := &Repo{
		path:  path,
		index: make(map[string]int),
	}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	for _, rec := range doc.Suppliers {
		key := domain.NormalizeName(rec.Name)
		if key == "" {
			continue
		}
		if _, ok := r.index[key]; ok {
			continue
		}
		r.index[key] = len(r.suppliers)
		r.suppliers = append(r.suppliers, domain.Supplier{
			Name:      rec.Name,
			Contact:   rec.Contact,
			CreatedAt: rec.CreatedAt,
		})
	}

	return r, nil
}

// Save writes the full registry to the store file.
func (r *Repo) Save() error {
	doc := document{Suppliers: make([]supplierRec, len(r.suppliers))}
	for i, s := range r.suppliers {
		doc.Suppliers[i] = supplierRec{Name: s.Name, Contact: s.Contact, CreatedAt: s.CreatedAt}
	}
	return jsonfile.Save(r.path, doc)
}

// Upsert inserts the supplier or refreshes an existing entry with the same
// normalized name. On refresh the name casing is updated, the contact is
// replaced when non-empty, and the original CreatedAt is kept.
func (r *Repo) Upsert(s domain.Supplier) (domain.Supplier, error) {
	key := domain.NormalizeName(s.Name)
	if key == "" {
		return domain.Supplier{}, domain.NewValidationError("name", "required")
	}

	if pos, ok := r.index[key]; ok {
		existing := r.suppliers[pos]
		existing.Name = s.Name
		if s.Contact != "" {
			existing.Contact = s.Contact
		}
		r.suppliers[pos] = existing
		return existing, nil
	}

	r.index[key] = len(r.suppliers)
	r.suppliers = append(r.suppliers, s)
	return s, nil
}

// Get returns the supplier with the given name (case-insensitive).
// Returns domain.ErrNotFound if absent.
func (r *Repo) Get(name string) (domain.Supplier, error) {
	pos, ok := r.index[domain.NormalizeName(name)]
	if !ok {
		return domain.Supplier{}, fmt.Errorf("supplier %q: %w", name, domain.ErrNotFound)
	}
	return r.suppliers[pos], nil
}

// Remove deletes the supplier with the given name (case-insensitive).
// Returns domain.ErrNotFound if absent. Past invoices are unaffected.
func (r *Repo) Remove(name string) error {
	key := domain.NormalizeName(name)
	pos, ok := r.index[key]
	if !ok {
		return fmt.Errorf("supplier %q: %w", name, domain.ErrNotFound)
	}

	r.suppliers = append(r.suppliers[:pos], r.suppliers[pos+1:]...)
	delete(r.index, key)
	for i := pos; i < len(r.suppliers); i++ {
		r.index[domain.NormalizeName(r.suppliers[i].Name)] = i
	}

	return nil
}

// List returns a copy of all suppliers in insertion order.
func (r *Repo) List() []domain.Supplier {
	out := make([]domain.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out
}

// Len returns the number of registered suppliers.
func (r *Repo) Len() int { return len(r.suppliers) }
