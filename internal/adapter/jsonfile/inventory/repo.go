// Package inventory implements the inventory store as a whole-file JSON
// document. Items are kept in memory in insertion order; ids come from a
// persisted counter and are never reused, even after deletion.
package inventory

import (
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides item persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path   string
	nextID int64
	items  []domain.Item
	index  map[int64]int
}

// document is the on-disk shape of the store.
type document struct {
	NextID int64     `json:"next_id"`
	Items  []itemRec `json:"items"`
}

type itemRec struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toDomainItem(rec itemRec) domain.Item {
	return domain.Item{
		ID:        rec.ID,
		Name:      rec.Name,
		Quantity:  rec.Quantity,
		Price:     rec.Price,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toItemRec(item domain.Item) itemRec {
	return itemRec{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// Open loads the store at path. A missing file starts an empty store. On a
// corrupt or unreadable file Open still returns a usable empty store together
// with a *domain.PersistenceError, so the caller can warn and continue.
func Open(path string) (*Repo, error) {
	r := &Repo{
		path:   path,
		nextID: 1,
		index:  make(map[int64]int),
	}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	for _, rec := range doc.Items {
		// Ids are unique; later duplicates in a hand-edited file are dropped.
		if _, ok := r.index[rec.ID]; ok {
			continue
		}
		r.index[rec.ID] = len(r.items)
		r.items = append(r.items, toDomainItem(rec))
		if rec.ID >= r.nextID {
			r.nextID = rec.ID + 1
		}
	}
	if doc.NextID > r.nextID {
		r.nextID = doc.NextID
	}

	return r, nil
}

// Save writes the full collection to the store file.
func (r *Repo) Save() error {
	doc := document{
		NextID: r.nextID,
		Items:  make([]itemRec, len(r.items)),
	}
	for i, item := range r.items {
		doc.Items[i] = toItemRec(item)
	}
	return jsonfile.Save(r.path, doc)
}

// checkConstraints enforces the store's data invariants, the analogue of
// database check constraints. Input validation proper lives in the services.
func checkConstraints(item domain.Item) error {
	var errs []domain.FieldError
	if item.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if item.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if item.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Add assigns the next sequential id and inserts the item at the end.
func (r *Repo) Add(item domain.Item) (domain.Item, error) {
	if err := checkConstraints(item); err != nil {
		return domain.Item{}, err
	}

	item.ID = r.nextID
	r.nextID++
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, item)

	return item, nil
}

// Get returns the item with the given id.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Get(id int64) (domain.Item, error) {
	pos, ok := r.index[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return r.items[pos], nil
}

// Update applies a partial update to the item with the given id. Nil fields
// are left untouched. Returns domain.ErrNotFound if the id is absent and a
// validation error if the resulting record would violate store invariants;
// the stored item is unchanged on any error.
func (r *Repo) Update(id int64, upd domain.ItemUpdate) (domain.Item, error) {
	pos, ok := r.index[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	item := r.items[pos]
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if err := checkConstraints(item); err != nil {
		return domain.Item{}, err
	}

	item.UpdatedAt = time.Now()
	r.items[pos] = item
	return item, nil
}

// AdjustQuantity changes the item's quantity by delta (negative to decrement).
// Returns domain.ErrNotFound if the id is absent and a validation error if
// the result would go below zero; stock is unchanged on any error.
func (r *Repo) AdjustQuantity(id, delta int64) (domain.Item, error) {
	pos, ok := r.index[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	item := r.items[pos]
	if item.Quantity+delta < 0 {
		return domain.Item{}, domain.NewValidationError("quantity", "insufficient stock")
	}

	item.Quantity += delta
	item.UpdatedAt = time.Now()
	r.items[pos] = item
	return item, nil
}

// Remove deletes the item with the given id. The deletion is hard: past
// invoices keep their frozen snapshots regardless.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Remove(id int64) error {
	pos, ok := r.index[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	r.items = append(r.items[:pos], r.items[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.items); i++ {
		r.index[r.items[i].ID] = i
	}

	return nil
}

// All returns a lazy, restartable sequence of current items in insertion
// order. The sequence reflects the live collection; do not mutate the store
// while iterating.
func (r *Repo) All() iter.Seq[domain.Item] {
	return func(yield func(domain.Item) bool) {
		for _, item := range r.items {
			if !yield(item) {
				return
			}
		}
	}
}

// List returns a materialized copy of all items in insertion order.
func (r *Repo) List() []domain.Item {
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of items in the store.
func (r *Repo) Len() int { return len(r.items) }
