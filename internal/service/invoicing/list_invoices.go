package invoicing

import (
	"context"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// ListInvoices returns invoices in creation order, optionally filtered by
// supplier and/or date range.
func (s *Service) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) []domain.Invoice {
	return s.history.List(filter)
}
