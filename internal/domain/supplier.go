package domain

import "time"

// Supplier is a display-only registry entry. Invoices reference suppliers by
// free-form name; no referential integrity is enforced between the two.
type Supplier struct {
	Name      string
	Contact   string
	CreatedAt time.Time
}
