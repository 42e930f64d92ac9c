package invoicing

import (
	"context"
	"fmt"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// GetInvoice returns a single invoice by its number.
func (s *Service) GetInvoice(ctx context.Context, number int64) (domain.Invoice, error) {
	inv, err := s.history.Get(number)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}
