package invoicing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// CreateInvoice builds an invoice from the requested lines, decrements stock
// and appends the invoice to the history. Every line is checked against
// current stock before anything is applied; a failure during apply restores
// the decrements already taken, so a failed create leaves both collections
// unchanged. Line name and unit price are frozen at creation time.
func (s *Service) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return domain.Invoice{}, err
	}

	supplierName := strings.TrimSpace(input.Supplier)

	// Check every line against current stock. Quantities for the same item
	// accumulate across lines.
	needs := make(map[int64]int64, len(input.Lines))
	stock := make(map[int64]domain.Item, len(input.Lines))
	for _, line := range input.Lines {
		if _, ok := stock[line.ItemID]; !ok {
			item, err := s.stock.Get(line.ItemID)
			if err != nil {
				return domain.Invoice{}, fmt.Errorf("line item %d: %w", line.ItemID, err)
			}
			stock[line.ItemID] = item
		}
		needs[line.ItemID] += line.Quantity
		if item := stock[line.ItemID]; needs[line.ItemID] > item.Quantity {
			return domain.Invoice{}, domain.NewValidationError("lines",
				fmt.Sprintf("item %d %q: requested %d, in stock %d",
					item.ID, item.Name, needs[line.ItemID], item.Quantity))
		}
	}

	now := time.Now().UTC()

	lines := make([]domain.InvoiceLine, 0, len(input.Lines))
	total := decimal.Zero
	for _, line := range input.Lines {
		item := stock[line.ItemID]
		lineTotal := item.Price.Mul(decimal.NewFromInt(line.Quantity))
		lines = append(lines, domain.InvoiceLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	applied := make([]domain.InvoiceLine, 0, len(lines))
	rollback := func() {
		for _, l := range applied {
			if _, err := s.stock.AdjustQuantity(l.ItemID, l.Quantity); err != nil {
				s.log.ErrorContext(ctx, "stock rollback failed",
					slog.Int64("item_id", l.ItemID),
					slog.String("error", err.Error()))
			}
		}
	}

	for _, l := range lines {
		if _, err := s.stock.AdjustQuantity(l.ItemID, -l.Quantity); err != nil {
			rollback()
			return domain.Invoice{}, fmt.Errorf("reserve stock for item %d: %w", l.ItemID, err)
		}
		applied = append(applied, l)
	}

	inv := domain.Invoice{
		ID:        uuid.New(),
		Number:    s.history.NextNumber(),
		Supplier:  supplierName,
		Lines:     lines,
		Total:     total,
		CreatedAt: now,
	}
	if err := s.history.Append(inv); err != nil {
		rollback()
		return domain.Invoice{}, fmt.Errorf("append invoice: %w", err)
	}

	// The registry is a convenience for later lookups; a failure here must
	// not undo an invoice that is already part of the history.
	if _, err := s.suppliers.Upsert(domain.Supplier{Name: supplierName, CreatedAt: now}); err != nil {
		s.log.WarnContext(ctx, "supplier registry update failed",
			slog.String("supplier", supplierName),
			slog.String("error", err.Error()))
	}

	if err := s.history.Save(); err != nil {
		return domain.Invoice{}, fmt.Errorf("save invoices: %w", err)
	}
	if err := s.stock.Save(); err != nil {
		return domain.Invoice{}, fmt.Errorf("save inventory: %w", err)
	}
	if err := s.suppliers.Save(); err != nil {
		return domain.Invoice{}, fmt.Errorf("save suppliers: %w", err)
	}

	s.recordActivity(ctx, fmt.Sprintf("invoice %d for %q, total %s",
		inv.Number, inv.Supplier, inv.Total.StringFixed(2)))

	s.log.InfoContext(ctx, "invoice created",
		slog.Int64("number", inv.Number),
		slog.String("supplier", inv.Supplier),
		slog.String("total", inv.Total.StringFixed(2)),
		slog.Int("lines", len(inv.Lines)),
	)

	return inv, nil
}
