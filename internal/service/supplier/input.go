package supplier

import (
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// AddSupplierInput holds the parameters for registering a supplier.
type AddSupplierInput struct {
	Name    string
	Contact string
}

// Validate checks all fields and collects all errors.
func (i AddSupplierInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(i.Contact) > 200 {
		errs = append(errs, domain.FieldError{Field: "contact", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
