package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Preferences holds flat application settings, persisted across runs with
// last-write-wins semantics.
type Preferences struct {
	Language     string
	Theme        Theme
	TemplatePath string
}

// DefaultPreferences returns Preferences with the startup defaults applied.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: "en",
		Theme:    ThemeLight,
	}
}

// PreferencesUpdate holds the settings fields that may be changed.
// Nil fields are left untouched.
type PreferencesUpdate struct {
	Language     *string
	Theme        *Theme
	TemplatePath *string
}
