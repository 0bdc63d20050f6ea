package store

import "fmt"

// Config holds database configuration.
type Config struct {
	// Driver selects the database driver. Only "sqlite" is wired today.
	Driver string `yaml:"driver" mapstructure:"driver"`
	// DSN is the data source name (for sqlite, the database file path).
	DSN string `yaml:"dsn" mapstructure:"dsn"`
	// LogLevel controls GORM query logging: silent, error, warn, info.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	if c.DSN == "" {
		c.DSN = "upload-ai.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Driver != "sqlite" {
		return fmt.Errorf("database.driver %q is not supported (only sqlite)", c.Driver)
	}
	if c.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}
