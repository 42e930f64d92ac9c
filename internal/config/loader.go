package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The YAML file is looked up in order: CONFIG_PATH env, ./config.yaml,
// <user config dir>/stockbook/config.yaml. A file named by CONFIG_PATH
// must exist; the fallback locations are optional.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file anywhere, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// configPath resolves the config file location. The bool reports whether
// the path was set explicitly and therefore must exist.
func configPath() (string, bool) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path, true
	}
	if _, err := os.Stat("./config.yaml"); err == nil {
		return "./config.yaml", false
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "stockbook", "config.yaml"), false
	}
	return "./config.yaml", false
}
