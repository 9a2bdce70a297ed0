package storage

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// Config contains local storage configuration.
type Config struct {
	// BasePath is the root directory for filesystem storage.
	// Default: ".data/local"
	BasePath     string `toml:"base_path"`
	MaxEntrySize string `toml:"max_entry_size"`

	maxEntrySizeVal int64
}

// Env maps environment variable names for storage configuration.
type Env struct {
	BasePath     string
	MaxEntrySize string
}

// MaxEntrySizeBytes returns the parsed per-entry size limit. Zero disables
// the limit and is only returned before Finalize.
func (c *Config) MaxEntrySizeBytes() int64 {
	return c.maxEntrySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxEntrySize != "" {
		c.MaxEntrySize = overlay.MaxEntrySize
	}
}

func (c *Config) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = ".data/local"
	}
	if c.MaxEntrySize == "" {
		c.MaxEntrySize = "1MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BasePath != "" {
		if v := os.Getenv(env.BasePath); v != "" {
			c.BasePath = v
		}
	}
	if env.MaxEntrySize != "" {
		if v := os.Getenv(env.MaxEntrySize); v != "" {
			c.MaxEntrySize = v
		}
	}
}

func (c *Config) validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base_path required")
	}

	size, err := units.FromHumanSize(c.MaxEntrySize)
	if err != nil {
		return fmt.Errorf("invalid max_entry_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_entry_size must be positive")
	}
	c.maxEntrySizeVal = size

	return nil
}
