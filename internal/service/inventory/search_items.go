package inventory

import (
	"context"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// SearchItems returns items whose name contains the query, case-insensitive.
// An empty query matches everything.
func (s *Service) SearchItems(ctx context.Context, query string) []domain.Item {
	q := domain.NormalizeName(query)
	if q == "" {
		return s.items.List()
	}

	var out []domain.Item
	for item := range s.items.All() {
		if strings.Contains(domain.NormalizeName(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}
