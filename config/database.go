package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabaseConfig holds the SQLite store configuration.
type DatabaseConfig struct {
	Path        string
	JournalMode string
	Synchronous string
}

// GetDSN returns the data source name handed to the SQLite driver.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s?cache=shared&_journal_mode=%s&_synchronous=%s",
		c.Path, c.JournalMode, c.Synchronous)
}

// GetDefaultDatabaseConfig returns the configuration for the database file at
// dbPath.
func GetDefaultDatabaseConfig(dbPath string) *DatabaseConfig {
	return &DatabaseConfig{
		Path:        dbPath,
		JournalMode: "WAL",
		Synchronous: "NORMAL",
	}
}

// ValidateConfig validates the database configuration
func (c *DatabaseConfig) ValidateConfig() error {
	if c.Path == "" {
		return fmt.Errorf("SQLite path cannot be empty")
	}
	switch c.JournalMode {
	case "WAL", "DELETE", "TRUNCATE", "MEMORY":
	default:
		return fmt.Errorf("unsupported journal mode: %s", c.JournalMode)
	}
	return nil
}

// EnsureDirectoryExists ensures the directory for the SQLite file exists
func (c *DatabaseConfig) EnsureDirectoryExists() error {
	return os.MkdirAll(filepath.Dir(c.Path), 0o755)
}
