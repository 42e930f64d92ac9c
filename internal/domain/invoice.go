package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is an immutable record of a sale. Lines freeze the item name and
// unit price as they were at creation time; the total is computed once at
// creation and never recomputed.
type Invoice struct {
	ID        uuid.UUID
	Number    int64
	Supplier  string
	Lines     []InvoiceLine
	Total     decimal.Decimal
	CreatedAt time.Time
}

// InvoiceLine is a frozen per-item snapshot inside an invoice.
type InvoiceLine struct {
	ItemID    int64
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Units returns the total number of units across all lines.
func (inv *Invoice) Units() int64 {
	var n int64
	for _, l := range inv.Lines {
		n += l.Quantity
	}
	return n
}

// InvoiceFilter contains filtering parameters for history listings.
// Nil fields match everything.
type InvoiceFilter struct {
	Supplier *string
	From     *time.Time
	To       *time.Time
}

// Matches reports whether the invoice passes the filter. Supplier comparison
// is case-insensitive; the time bounds are inclusive.
func (f InvoiceFilter) Matches(inv Invoice) bool {
	if f.Supplier != nil && !strings.EqualFold(inv.Supplier, *f.Supplier) {
		return false
	}
	if f.From != nil && inv.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && inv.CreatedAt.After(*f.To) {
		return false
	}
	return true
}
