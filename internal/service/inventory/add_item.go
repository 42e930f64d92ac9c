package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// AddItem adds a new item to the inventory and persists the store.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (domain.Item, error) {
	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	item, err := s.items.Add(domain.Item{
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Price:    input.Price,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("add item: %w", err)
	}

	if err := s.items.Save(); err != nil {
		return domain.Item{}, fmt.Errorf("save inventory: %w", err)
	}

	s.recordActivity(ctx, domain.ActionCreate,
		fmt.Sprintf("item %d %q: %d units @ %s", item.ID, item.Name, item.Quantity, item.Price.StringFixed(2)))

	s.log.InfoContext(ctx, "item added",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
		slog.Int64("quantity", item.Quantity),
	)

	return item, nil
}
