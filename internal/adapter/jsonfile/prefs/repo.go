// Package prefs implements the preferences store as a whole-file JSON
// document holding a single flat record with last-write-wins semantics.
// Defaults are applied for keys missing from the file.
package prefs

import (
	"github.com/heartmarshall/stockbook/internal/adapter/jsonfile"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// Repo provides preferences persistence backed by a single JSON file.
// It is not safe for concurrent use; callers serialize access.
type Repo struct {
	path  string
	prefs domain.Preferences
}

// document is the on-disk shape of the preferences record.
type document struct {
	Language     string `json:"language,omitempty"`
	Theme        string `json:"theme,omitempty"`
	TemplatePath string `json:"template_path,omitempty"`
}

// Open loads the preferences at path, applying defaults for missing keys.
// A missing file yields pure defaults. On a corrupt or unreadable file Open
// still returns a usable store with defaults together with a
// *domain.PersistenceError, so the caller can warn and continue.
func Open(path string) (*Repo, error) {
	r := &Repo{
		path:  path,
		prefs: domain.DefaultPreferences(),
	}

	var doc document
	found, err := jsonfile.Load(path, &doc)
	if err != nil || !found {
		return r, err
	}

	if doc.Language != "" {
		r.prefs.Language = doc.Language
	}
	if theme := domain.Theme(doc.Theme); theme.IsValid() {
		r.prefs.Theme = theme
	}
	if doc.TemplatePath != "" {
		r.prefs.TemplatePath = doc.TemplatePath
	}

	return r, nil
}

// Save writes the preferences record to the store file.
func (r *Repo) Save() error {
	doc := document{
		Language:     r.prefs.Language,
		Theme:        r.prefs.Theme.String(),
		TemplatePath: r.prefs.TemplatePath,
	}
	return jsonfile.Save(r.path, doc)
}

// Get returns the current preferences.
func (r *Repo) Get() domain.Preferences { return r.prefs }

// Set replaces the stored preferences. The record must carry a valid theme
// and a non-empty language.
func (r *Repo) Set(p domain.Preferences) error {
	var errs []domain.FieldError
	if p.Language == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if !p.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "must be light or dark"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	r.prefs = p
	return nil
}
