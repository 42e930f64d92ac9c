package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// RemoveItem deletes an item from the inventory and persists the store.
// Lines on already-created invoices keep their frozen snapshot of the item.
func (s *Service) RemoveItem(ctx context.Context, id int64) error {
	item, err := s.items.Get(id)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	if err := s.items.Remove(id); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	if err := s.items.Save(); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}

	s.recordActivity(ctx, domain.ActionDelete,
		fmt.Sprintf("item %d %q", item.ID, item.Name))

	s.log.InfoContext(ctx, "item removed",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
	)

	return nil
}
