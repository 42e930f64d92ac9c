package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// CreateUser creates a new local account.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	if err := s.users.Save(); err != nil {
		return domain.User{}, fmt.Errorf("save users: %w", err)
	}

	s.recordActivity(ctx, domain.ActionCreate,
		fmt.Sprintf("user %q (%s)", user.Username, user.Role))

	s.log.InfoContext(ctx, "user created",
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}
