package auth

import (
	"context"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// ListUsers returns all accounts in creation order.
func (s *Service) ListUsers(ctx context.Context) []domain.User {
	return s.users.List()
}
