package invoicing

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// LineRequest asks for a quantity of one inventory item.
type LineRequest struct {
	ItemID   int64
	Quantity int64
}

// CreateInvoiceInput holds the parameters for creating an invoice.
type CreateInvoiceInput struct {
	Supplier string
	Lines    []LineRequest
}

// Validate checks all fields and collects all errors.
func (i CreateInvoiceInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Supplier) == "" {
		errs = append(errs, domain.FieldError{Field: "supplier", Message: "required"})
	}
	if len(i.Lines) == 0 {
		errs = append(errs, domain.FieldError{Field: "lines", Message: "at least one line required"})
	}
	for n, line := range i.Lines {
		if line.ItemID <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("lines[%d].item_id", n), Message: "required"})
		}
		if line.Quantity <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("lines[%d].quantity", n), Message: "must be positive"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
