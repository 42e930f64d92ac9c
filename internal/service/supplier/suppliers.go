package supplier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// AddSupplier registers a supplier or refreshes an existing entry with the
// same normalized name.
func (s *Service) AddSupplier(ctx context.Context, input AddSupplierInput) (domain.Supplier, error) {
	if err := input.Validate(); err != nil {
		return domain.Supplier{}, err
	}

	sup, err := s.suppliers.Upsert(domain.Supplier{
		Name:      strings.TrimSpace(input.Name),
		Contact:   strings.TrimSpace(input.Contact),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("upsert supplier: %w", err)
	}

	if err := s.suppliers.Save(); err != nil {
		return domain.Supplier{}, fmt.Errorf("save suppliers: %w", err)
	}

	s.recordActivity(ctx, domain.ActionCreate, fmt.Sprintf("supplier %q", sup.Name))

	s.log.InfoContext(ctx, "supplier registered", slog.String("name", sup.Name))

	return sup, nil
}

// ListSuppliers returns all registered suppliers in insertion order.
func (s *Service) ListSuppliers(ctx context.Context) []domain.Supplier {
	return s.suppliers.List()
}

// RemoveSupplier deletes a supplier from the registry by name,
// case-insensitive. Past invoices keep the supplier name they were
// created with.
func (s *Service) RemoveSupplier(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}

	if err := s.suppliers.Remove(name); err != nil {
		return fmt.Errorf("remove supplier: %w", err)
	}

	if err := s.suppliers.Save(); err != nil {
		return fmt.Errorf("save suppliers: %w", err)
	}

	s.recordActivity(ctx, domain.ActionDelete, fmt.Sprintf("supplier %q", name))

	s.log.InfoContext(ctx, "supplier removed", slog.String("name", name))

	return nil
}
