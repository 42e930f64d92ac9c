package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// UpdateItem applies a partial update to an item and persists the store.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (domain.Item, error) {
	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	current, err := s.items.Get(input.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}

	upd := domain.ItemUpdate{
		Quantity: input.Quantity,
		Price:    input.Price,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		upd.Name = &trimmed
	}

	updated, err := s.items.Update(input.ID, upd)
	if err != nil {
		return domain.Item{}, fmt.Errorf("update item: %w", err)
	}

	if err := s.items.Save(); err != nil {
		return domain.Item{}, fmt.Errorf("save inventory: %w", err)
	}

	s.recordActivity(ctx, domain.ActionUpdate,
		fmt.Sprintf("item %d: %s", updated.ID, buildItemChanges(current, updated)))

	s.log.InfoContext(ctx, "item updated",
		slog.Int64("item_id", updated.ID),
		slog.String("name", updated.Name),
	)

	return updated, nil
}

// buildItemChanges describes the field changes between two versions of an item.
func buildItemChanges(old, new domain.Item) string {
	var parts []string

	if old.Name != new.Name {
		parts = append(parts, fmt.Sprintf("name %q -> %q", old.Name, new.Name))
	}
	if old.Quantity != new.Quantity {
		parts = append(parts, fmt.Sprintf("quantity %d -> %d", old.Quantity, new.Quantity))
	}
	if !old.Price.Equal(new.Price) {
		parts = append(parts, fmt.Sprintf("price %s -> %s", old.Price.StringFixed(2), new.Price.StringFixed(2)))
	}

	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}
