// Package invoice implements the invoice history as a whole-file JSON
// document. The history is append-only and the next invoice number comes
// from a persisted counter, so numbers stay strictly increasing across
// restarts and are never handed out twice, even if the history file is
// truncated or edited.
package invoice

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides invoice history persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path       string
	nextNumber int64
	invoices   []domain.Invoice
	byNumber   map[int64]int
}

// document is the on-disk shape of the history.
type document struct {
	NextNumber int64        `json:"next_number"`
	Invoices   []invoiceRec `json:"invoices"`
}

type invoiceRec struct {
	ID        uuid.UUID       `json:"id"`
	Number    int64           `json:"number"`
	Supplier  string          `json:"supplier"`
	Lines     []lineRec       `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type lineRec struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func toDomainInvoice(rec invoiceRec) domain.Invoice {
	inv := domain.Invoice{
		ID:        rec.ID,
		Number:    rec.Number,
		Supplier:  rec.Supplier,
		Lines:     make([]domain.InvoiceLine, len(rec.Lines)),
		Total:     rec.Total,
		CreatedAt: rec.CreatedAt,
	}
	for i, l := range rec.Lines {
		inv.Lines[i] = domain.InvoiceLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		}
	}
	return inv
}

func toInvoiceRec(inv domain.Invoice) invoiceRec {
	rec := invoiceRec{
		ID:        inv.ID,
		Number:    inv.Number,
		Supplier:  inv.Supplier,
		Lines:     make([]lineRec, len(inv.Lines)),
		Total:     inv.Total,
		CreatedAt: inv.CreatedAt,
	}
	for i, l := range inv.Lines {
		rec.Lines[i] = lineRec{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		}
	}
	return rec
}

// Open loads the history at path. A missing file starts an empty history. On
// a corrupt or unreadable file Open still returns a usable empty history
// together with a *domain.PersistenceError, so the caller can warn and
// continue.
func Open(path string) (*Repo, error) {
	r := &Repo{
		path:       path,
		nextNumber: 1,
		byNumber:   make(map[int64]int),
	}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	for _, rec := range doc.Invoices {
		// Numbers are unique; later duplicates in a hand-edited file are dropped.
		if _, ok := r.byNumber[rec.Number]; ok {
			continue
		}
		r.byNumber[rec.Number] = len(r.invoices)
		r.invoices = append(r.invoices, toDomainInvoice(rec))
		if rec.Number >= r.nextNumber {
			r.nextNumber = rec.Number + 1
		}
	}
	// The persisted counter wins over max-of-list so that numbers of deleted
	// history entries are never handed out again.
	if doc.NextNumber > r.nextNumber {
		r.nextNumber = doc.NextNumber
	}

	return r, nil
}

// Save writes the full history to the store file.
func (r *Repo) Save() error {
	doc := document{
		NextNumber: r.nextNumber,
		Invoices:   make([]invoiceRec, len(r.invoices)),
	}
	for i, inv := range r.invoices {
		doc.Invoices[i] = toInvoiceRec(inv)
	}
	return jsonfile.Save(r.path, doc)
}

// NextNumber returns the number the next appended invoice must carry,
// starting at 1 for an empty history. It does not advance the counter;
// the counter advances when the invoice is appended.
func (r *Repo) NextNumber() int64 { return r.nextNumber }

// Append adds the invoice to the end of the history and advances the number
// counter. The invoice must carry the current NextNumber; anything else is
// rejected with a validation error and the history is left unchanged.
func (r *Repo) Append(inv domain.Invoice) error {
	if inv.Number != r.nextNumber {
		return fmt.Errorf("invoice number %d out of sequence (next is %d): %w",
			inv.Number, r.nextNumber, domain.ErrValidation)
	}

	lines := make([]domain.InvoiceLine, len(inv.Lines))
	copy(lines, inv.Lines)
	inv.Lines = lines

	r.byNumber[inv.Number] = len(r.invoices)
	r.invoices = append(r.invoices, inv)
	r.nextNumber++

	return nil
}

// Get returns the invoice with the given number.
// Returns domain.ErrNotFound if the number is absent.
func (r *Repo) Get(number int64) (domain.Invoice, error) {
	pos, ok := r.byNumber[number]
	if !ok {
		return domain.Invoice{}, fmt.Errorf("invoice %d: %w", number, domain.ErrNotFound)
	}
	return r.invoices[pos], nil
}

// All returns a lazy, restartable sequence of invoices in creation order.
// Invoices are immutable; treat the yielded values and their lines as
// read-only.
func (r *Repo) All() iter.Seq[domain.Invoice] {
	return func(yield func(domain.Invoice) bool) {
		for _, inv := range r.invoices {
			if !yield(inv) {
				return
			}
		}
	}
}

// List returns the invoices matching the filter in creation order.
func (r *Repo) List(filter domain.InvoiceFilter) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if filter.Matches(inv) {
			out = append(out, inv)
		}
	}
	return out
}

// Len returns the number of invoices in the history.
func (r *Repo) Len() int { return len(r.invoices) }
