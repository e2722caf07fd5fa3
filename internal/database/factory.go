package database

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"fzf-nav/internal/config"
)

// NewStoreFromConfig creates a store based on the database config type.
// A leading ~ in the path is expanded to the user's home directory.
func NewStoreFromConfig(cfg config.DatabaseConfig) (*SQLiteStore, error) {
	switch cfg.Type {
	case "", "sqlite":
		if cfg.Path == "" {
			return nil, fmt.Errorf("path required for sqlite database")
		}
		path, err := homedir.Expand(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("expanding database path: %w", err)
		}
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
