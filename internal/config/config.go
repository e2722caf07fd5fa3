package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default limits used when a command's limit argument is missing or not a number.
const (
	DefaultReportLimit = 50
	DefaultSelectLimit = 100
)

// DefaultPickerCommand is the picker started by the selection commands.
const DefaultPickerCommand = "fzf --height=40% --reverse"

// Config represents the main configuration for fzf-nav.
type Config struct {
	BaseDir  string         `toml:"base_dir"`
	LogDir   string         `toml:"log_dir"`
	LogLevel string         `toml:"log_level"` // "debug", "info" (default), "warn" or "error"
	Database DatabaseConfig `toml:"database"`
	Picker   PickerConfig   `toml:"picker"`
	Limits   LimitsConfig   `toml:"limits"`
	Prune    PruneConfig    `toml:"prune"`
}

// DatabaseConfig represents configuration for the history store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type string `toml:"type"`           // "sqlite" (default)
	Path string `toml:"path,omitempty"` // store file; may start with ~
}

// PickerConfig configures the interactive selector.
type PickerConfig struct {
	Command string   `toml:"command"`           // shell-quoted command line
	Exclude []string `toml:"exclude,omitempty"` // glob patterns; without '/' they match any path element
}

// LimitsConfig holds the default row limits.
type LimitsConfig struct {
	Report int `toml:"report"` // recent-dirs, recent-files, popular-dirs
	Select int `toml:"select"` // change-to-dir, change-to-file
}

// PruneConfig configures the stale-entry sweep.
type PruneConfig struct {
	SnapshotDir string `toml:"snapshot_dir,omitempty"` // copy the store here before pruning; empty disables
}

// NewConfig creates a new Config with default values rooted at baseDir.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir:  baseDir,
		LogDir:   filepath.Join(baseDir, "log"),
		LogLevel: "info",
		Database: DatabaseConfig{Type: "sqlite", Path: "~/.fzf.db"},
		Picker:   PickerConfig{Command: DefaultPickerCommand},
		Limits:   LimitsConfig{Report: DefaultReportLimit, Select: DefaultSelectLimit},
	}
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults(baseDir string) {
	def := NewConfig(baseDir)
	if c.BaseDir == "" {
		c.BaseDir = def.BaseDir
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(c.BaseDir, "log")
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Database.Type == "" {
		c.Database.Type = def.Database.Type
	}
	if c.Database.Path == "" {
		c.Database.Path = def.Database.Path
	}
	if c.Picker.Command == "" {
		c.Picker.Command = def.Picker.Command
	}
	if c.Limits.Report <= 0 {
		c.Limits.Report = def.Limits.Report
	}
	if c.Limits.Select <= 0 {
		c.Limits.Select = def.Limits.Select
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the config at path and fills unset fields with defaults rooted
// at baseDir. A missing file is not an error: the tool works unconfigured.
func Load(path, baseDir string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewConfig(baseDir), nil
	}
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(baseDir)
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
