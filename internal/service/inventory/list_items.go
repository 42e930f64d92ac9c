package inventory

import (
	"context"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// ListItems returns all items in insertion order.
func (s *Service) ListItems(ctx context.Context) []domain.Item {
	return s.items.List()
}
