package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - FZF_NAV_CONFIG_PATH: config file location (default: ~/.config/fzf-nav.toml)
//   - FZF_NAV_HOME: base directory for fzf-nav data (default: ~/.local/share/fzf-nav)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv("FZF_NAV_CONFIG_PATH"); path != "" {
		return homedir.Expand(path)
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "fzf-nav.toml"), nil
}

func getBaseDir() (string, error) {
	if path := os.Getenv("FZF_NAV_HOME"); path != "" {
		return homedir.Expand(path)
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "fzf-nav"), nil
}
