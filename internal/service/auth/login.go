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

// Login authenticates a user with username + password.
// Returns ErrUnauthorized if the username is unknown or the password is
// wrong; the two cases are deliberately indistinguishable.
func (s *Service) Login(ctx context.Context, input LoginInput) (domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetByUsername(input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return domain.User{}, domain.ErrUnauthorized
	}

	s.recordActivity(ctx, domain.ActionLogin, fmt.Sprintf("user %q logged in", user.Username))

	s.log.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}
