package domain

// Role represents the permission level of a user account.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// Theme represents the display theme stored in preferences. Values are
// lowercase because they are persisted and shown to the user as-is.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in the activity log).
type EntityType string

const (
	EntityTypeItem     EntityType = "ITEM"
	EntityTypeInvoice  EntityType = "INVOICE"
	EntityTypeSupplier EntityType = "SUPPLIER"
	EntityTypeUser     EntityType = "USER"
	EntityTypePrefs    EntityType = "PREFS"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeItem, EntityTypeInvoice, EntityTypeSupplier, EntityTypeUser, EntityTypePrefs:
		return true
	}
	return false
}

// Action represents the kind of event recorded in the activity log.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
	ActionExport Action = "EXPORT"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionExport:
		return true
	}
	return false
}
