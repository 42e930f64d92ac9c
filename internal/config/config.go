package config

import "path/filepath"

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Export  ExportConfig  `yaml:"export"`
	Stats   StatsConfig   `yaml:"stats"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig holds the data directory and per-store file names.
// Every store is a single whole-file JSON document under Dir.
type StorageConfig struct {
	Dir           string `yaml:"dir"            env:"STORAGE_DIR"            env-default:"./data"`
	InventoryFile string `yaml:"inventory_file" env:"STORAGE_INVENTORY_FILE" env-default:"inventory.json"`
	InvoicesFile  string `yaml:"invoices_file"  env:"STORAGE_INVOICES_FILE"  env-default:"invoices.json"`
	SuppliersFile string `yaml:"suppliers_file" env:"STORAGE_SUPPLIERS_FILE" env-default:"suppliers.json"`
	UsersFile     string `yaml:"users_file"     env:"STORAGE_USERS_FILE"     env-default:"users.json"`
	ActivityFile  string `yaml:"activity_file"  env:"STORAGE_ACTIVITY_FILE"  env-default:"activity.json"`
	PrefsFile     string `yaml:"prefs_file"     env:"STORAGE_PREFS_FILE"     env-default:"prefs.json"`
}

// InventoryPath returns the full path of the inventory store file.
func (s StorageConfig) InventoryPath() string { return filepath.Join(s.Dir, s.InventoryFile) }

// InvoicesPath returns the full path of the invoice history file.
func (s StorageConfig) InvoicesPath() string { return filepath.Join(s.Dir, s.InvoicesFile) }

// SuppliersPath returns the full path of the supplier registry file.
func (s StorageConfig) SuppliersPath() string { return filepath.Join(s.Dir, s.SuppliersFile) }

// UsersPath returns the full path of the user accounts file.
func (s StorageConfig) UsersPath() string { return filepath.Join(s.Dir, s.UsersFile) }

// ActivityPath returns the full path of the activity log file.
func (s StorageConfig) ActivityPath() string { return filepath.Join(s.Dir, s.ActivityFile) }

// PrefsPath returns the full path of the preferences file.
func (s StorageConfig) PrefsPath() string { return filepath.Join(s.Dir, s.PrefsFile) }

// AuthConfig holds account and password hashing settings.
type AuthConfig struct {
	PasswordHashCost  int  `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"10"`
	MinPasswordLength int  `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH" env-default:"4"`
	SeedDefaultAdmin  bool `yaml:"seed_default_admin"  env:"AUTH_SEED_DEFAULT_ADMIN"  env-default:"true"`
}

// ExportConfig holds export output settings.
type ExportConfig struct {
	Dir            string `yaml:"dir"             env:"EXPORT_DIR"             env-default:"./exports"`
	CurrencySymbol string `yaml:"currency_symbol" env:"EXPORT_CURRENCY_SYMBOL" env-default:"$"`
	SheetName      string `yaml:"sheet_name"      env:"EXPORT_SHEET_NAME"      env-default:"Report"`
}

// StatsConfig holds dashboard thresholds.
type StatsConfig struct {
	LowStockThreshold int64 `yaml:"low_stock_threshold" env:"STATS_LOW_STOCK_THRESHOLD" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
