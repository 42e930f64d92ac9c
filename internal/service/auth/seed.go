package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// Default credentials seeded into an empty user store on first run.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// EnsureDefaultAdmin seeds the default admin account when the store is empty
// and seeding is enabled. Without it a fresh installation has no way to log
// in or create further accounts.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	if !s.cfg.SeedDefaultAdmin || s.users.Len() > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	if _, err := s.users.Create(domain.User{
		ID:           uuid.New(),
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	if err := s.users.Save(); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	s.log.WarnContext(ctx, "default admin account seeded, change its password",
		slog.String("username", DefaultAdminUsername))

	return nil
}
