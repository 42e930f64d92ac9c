package prefs

import (
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// UpdatePrefsInput holds the parameters for a partial preferences update.
// Nil fields are left unchanged; TemplatePath ptr("") clears the path.
type UpdatePrefsInput struct {
	Language     *string
	Theme        *string
	TemplatePath *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePrefsInput) Validate() error {
	var errs []domain.FieldError

	if i.Language == nil && i.Theme == nil && i.TemplatePath == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Language != nil {
		lang := strings.TrimSpace(*i.Language)
		if lang == "" {
			errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
		}
		if len(lang) > 16 {
			errs = append(errs, domain.FieldError{Field: "language", Message: "max 16 characters"})
		}
	}
	if i.Theme != nil {
		theme := domain.Theme(strings.ToLower(strings.TrimSpace(*i.Theme)))
		if !theme.IsValid() {
			errs = append(errs, domain.FieldError{Field: "theme", Message: "must be light or dark"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
