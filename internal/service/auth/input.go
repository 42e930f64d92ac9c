package auth

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// LoginInput holds the parameters for a password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds the parameters for creating a user account.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// Validate checks all fields and collects all errors. The minimum password
// length comes from configuration.
func (i CreateUserInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}
	if strings.ContainsAny(username, " \t") {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain spaces"})
	}
	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("min %d characters", minPasswordLength)})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or VIEWER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds the parameters for a password change.
type ChangePasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

// Validate checks all fields and collects all errors.
func (i ChangePasswordInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}
	if len(i.NewPassword) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: fmt.Sprintf("min %d characters", minPasswordLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
