package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// ChangePassword replaces a user's password after verifying the old one.
// Returns ErrUnauthorized if the old password does not match.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return err
	}

	user, err := s.users.GetByUsername(input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.SetPasswordHash(user.Username, string(hash)); err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	if err := s.users.Save(); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	s.recordActivity(ctx, domain.ActionUpdate,
		fmt.Sprintf("user %q changed password", user.Username))

	s.log.InfoContext(ctx, "password changed", slog.String("username", user.Username))

	return nil
}
