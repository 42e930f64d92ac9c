package prefs

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// GetPreferences returns the current preferences, defaults included.
func (s *Service) GetPreferences(ctx context.Context) domain.Preferences {
	return s.prefs.Get()
}

// UpdatePreferences applies a partial update and persists the store.
// Last write wins; the old and new values are recorded in the activity log.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePrefsInput) (domain.Preferences, error) {
	if err := input.Validate(); err != nil {
		return domain.Preferences{}, err
	}

	current := s.prefs.Get()
	next := applyPrefsChanges(current, input)

	if err := s.prefs.Set(next); err != nil {
		return domain.Preferences{}, fmt.Errorf("set preferences: %w", err)
	}

	if err := s.prefs.Save(); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	s.recordActivity(ctx, "preferences: "+buildPrefsChanges(current, next))

	s.log.InfoContext(ctx, "preferences updated")

	return next, nil
}

// applyPrefsChanges merges the input changes into the current preferences.
func applyPrefsChanges(current domain.Preferences, input UpdatePrefsInput) domain.Preferences {
	result := current

	if input.Language != nil {
		result.Language = strings.TrimSpace(*input.Language)
	}
	if input.Theme != nil {
		result.Theme = domain.Theme(strings.ToLower(strings.TrimSpace(*input.Theme)))
	}
	if input.TemplatePath != nil {
		result.TemplatePath = strings.TrimSpace(*input.TemplatePath)
	}

	return result
}

// buildPrefsChanges describes the field changes between two preference sets.
func buildPrefsChanges(old, new domain.Preferences) string {
	var parts []string

	if old.Language != new.Language {
		parts = append(parts, fmt.Sprintf("language %q -> %q", old.Language, new.Language))
	}
	if old.Theme != new.Theme {
		parts = append(parts, fmt.Sprintf("theme %q -> %q", old.Theme, new.Theme))
	}
	if old.TemplatePath != new.TemplatePath {
		parts = append(parts, fmt.Sprintf("template path %q -> %q", old.TemplatePath, new.TemplatePath))
	}

	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}
