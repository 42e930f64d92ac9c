package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single inventory product record. Quantity and price are never
// negative; removal is a hard delete and has no effect on the frozen line
// snapshots of past invoices.
type Item struct {
	ID        int64
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockValue returns quantity × unit price for this item.
func (i *Item) StockValue() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.Price)
}

// ItemUpdate holds the fields that may be changed on an existing item.
// Nil fields are left untouched.
type ItemUpdate struct {
	Name     *string
	Quantity *int64
	Price    *decimal.Decimal
}

// NormalizeName prepares an item or supplier name for comparison and search:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
