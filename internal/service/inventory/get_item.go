package inventory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// GetItem returns a single item by id.
func (s *Service) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	item, err := s.items.Get(id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}
