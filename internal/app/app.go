package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"

	"fzf-nav/internal/config"
	"fzf-nav/internal/database"
	"fzf-nav/internal/fs"
	"fzf-nav/internal/nav"
	"fzf-nav/internal/picker"
)

// NavApp is the application layer between the CLI and NavService.
// It constructs all dependencies from config and owns the log file, which
// is released on Close.
type NavApp struct {
	cfg     *config.Config
	store   *database.SQLiteStore
	service *nav.NavService
	run     *Run
	logger  *slog.Logger
	logFile *os.File
}

// NewNavApp creates a fully wired NavApp from the given config.
// command names the CLI command being run (e.g. "recent-dirs", "prune").
// The caller must call Close when done.
func NewNavApp(cfg *config.Config, command string) (*NavApp, error) {
	store, err := database.NewStoreFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	pk, err := picker.New(cfg.Picker.Command)
	if err != nil {
		return nil, fmt.Errorf("creating picker: %w", err)
	}

	var snapshotDir string
	if cfg.Prune.SnapshotDir != "" {
		snapshotDir, err = homedir.Expand(cfg.Prune.SnapshotDir)
		if err != nil {
			return nil, fmt.Errorf("expanding snapshot directory: %w", err)
		}
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	run := NewRun(command, time.Now())
	logger, logFile, err := newLogger(cfg.LogDir, run.ID, level)
	if err != nil {
		logger, logFile = discardLogger(run.ID), nil
	}
	logger = logger.With("command", command)
	logger.Debug("run started", "db_path", store.Path(), "picker", pk.Command())

	fsmgr := fs.NewOSFilesystemManager(cfg.Picker.Exclude)
	svc := nav.NewNavService(store, fsmgr, pk, &slogAdapter{l: logger}, nav.RealClock{}, snapshotDir)

	return &NavApp{
		cfg:     cfg,
		store:   store,
		service: svc,
		run:     run,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// DBPath returns the expanded location of the history store.
func (a *NavApp) DBPath() string {
	return a.store.Path()
}

func (a *NavApp) RecentDirectories(limit int) ([]*nav.RecentDirectory, error) {
	rows, err := a.service.RecentDirectories(limit)
	a.run.Record(err)
	return rows, err
}

func (a *NavApp) RecentFiles(limit int) ([]*nav.RecentFile, error) {
	rows, err := a.service.RecentFiles(limit)
	a.run.Record(err)
	return rows, err
}

func (a *NavApp) PopularDirectories(limit int) ([]*nav.PopularDirectory, error) {
	rows, err := a.service.PopularDirectories(limit)
	a.run.Record(err)
	return rows, err
}

func (a *NavApp) FileStats() ([]*nav.FileStat, error) {
	rows, err := a.service.FileStats()
	a.run.Record(err)
	return rows, err
}

func (a *NavApp) SearchHistory(query string) (*nav.SearchResult, error) {
	res, err := a.service.SearchHistory(query)
	a.run.Record(err)
	return res, err
}

// SelectDirectory runs the interactive directory picker.
func (a *NavApp) SelectDirectory(limit int) (string, error) {
	selected, err := a.service.SelectDirectory(limit)
	a.run.Record(err)
	return selected, err
}

// SelectFile runs the interactive file picker.
func (a *NavApp) SelectFile(limit int) (string, error) {
	selected, err := a.service.SelectFile(limit)
	a.run.Record(err)
	return selected, err
}

// PruneStale removes history rows whose paths no longer exist.
func (a *NavApp) PruneStale() (*nav.PruneResult, error) {
	res, err := a.service.PruneStale()
	a.run.Record(err)
	return res, err
}

// InitStore creates the store file if needed and applies the baseline
// schema. It returns the schema version.
func (a *NavApp) InitStore() (uint, error) {
	version, err := a.store.Init()
	a.run.Record(err)
	if err == nil {
		a.logger.Info("store initialized", "path", a.store.Path(), "version", version)
	}
	return version, err
}

// Close writes the run summary and closes the log file.
func (a *NavApp) Close() error {
	a.logger.Info("run finished",
		"status", a.run.Status,
		"duration", time.Since(a.run.Started).Round(time.Millisecond))

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	return nil
}
