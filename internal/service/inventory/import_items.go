package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// ImportItems adds a batch of new items and persists the store once.
// Every input is validated before the first item is added, so one bad
// row rejects the whole batch.
func (s *Service) ImportItems(ctx context.Context, inputs []AddItemInput) ([]domain.Item, error) {
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	added := make([]domain.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := s.items.Add(domain.Item{
			Name:     strings.TrimSpace(input.Name),
			Quantity: input.Quantity,
			Price:    input.Price,
		})
		if err != nil {
			return nil, fmt.Errorf("add item %q: %w", input.Name, err)
		}
		added = append(added, item)
	}

	if err := s.items.Save(); err != nil {
		return nil, fmt.Errorf("save inventory: %w", err)
	}

	s.recordActivity(ctx, domain.ActionCreate, fmt.Sprintf("imported %d items", len(added)))

	s.log.InfoContext(ctx, "items imported", slog.Int("count", len(added)))

	return added, nil
}
