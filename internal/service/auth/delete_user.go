package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// DeleteUser removes a local account. The last remaining admin cannot be
// deleted; doing so would lock everyone out of user management.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.NewValidationError("username", "required")
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if user.IsAdmin() && s.users.CountByRole(domain.RoleAdmin) <= 1 {
		return fmt.Errorf("delete last admin: %w", domain.ErrForbidden)
	}

	if err := s.users.Delete(user.Username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.users.Save(); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	s.recordActivity(ctx, domain.ActionDelete, fmt.Sprintf("user %q", user.Username))

	s.log.InfoContext(ctx, "user deleted", slog.String("username", user.Username))

	return nil
}
