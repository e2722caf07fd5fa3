package nav

import (
	"fmt"
	"os"
	"path/filepath"
)

// NavService is the orchestration layer between the CLI and the history
// store, the filesystem and the picker.
type NavService struct {
	database    Database
	fsmgr       FilesystemManager
	picker      Picker
	logger      Logger
	clock       Clock
	snapshotDir string
}

// NewNavService creates a new NavService with the provided dependencies.
// snapshotDir, when non-empty, is where PruneStale writes a copy of the
// store before sweeping it.
func NewNavService(database Database, fsmgr FilesystemManager, picker Picker, logger Logger, clock Clock, snapshotDir string) *NavService {
	return &NavService{
		database:    database,
		fsmgr:       fsmgr,
		picker:      picker,
		logger:      logger,
		clock:       clock,
		snapshotDir: snapshotDir,
	}
}

// RecentDirectories returns the limit most recently visited directories,
// oldest first.
func (s *NavService) RecentDirectories(limit int) ([]*RecentDirectory, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent directories: %w (got %d)", ErrInvalidLimit, limit)
	}
	return s.database.RecentDirectories(limit)
}

// RecentFiles returns the limit most recent file events, oldest first.
func (s *NavService) RecentFiles(limit int) ([]*RecentFile, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent files: %w (got %d)", ErrInvalidLimit, limit)
	}
	return s.database.RecentFiles(limit)
}

// PopularDirectories returns up to limit directories ranked by visit count.
func (s *NavService) PopularDirectories(limit int) ([]*PopularDirectory, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("popular directories: %w (got %d)", ErrInvalidLimit, limit)
	}
	return s.database.PopularDirectories(limit)
}

// FileStats returns the full distribution of file events by type and action.
func (s *NavService) FileStats() ([]*FileStat, error) {
	return s.database.FileStats()
}

// SearchHistory returns directories and files whose path contains query.
// An empty query matches every row.
func (s *NavService) SearchHistory(query string) (*SearchResult, error) {
	s.logger.Debug("searching history", "query", query)
	return s.database.SearchHistory(query)
}

// PruneStale removes every history row whose path no longer exists.
// If a snapshot directory is configured the store is copied there first;
// a failed snapshot aborts the prune before any row is removed.
func (s *NavService) PruneStale() (*PruneResult, error) {
	if s.snapshotDir != "" {
		dest, err := s.snapshot()
		if err != nil {
			return nil, err
		}
		s.logger.Info("store snapshot written", "path", dest)
	}

	result, err := s.database.PruneStale(s.fsmgr.Exists)
	if err != nil {
		s.logger.Error("prune failed, store unchanged", "error", err)
		return nil, err
	}

	s.logger.Info("pruned stale history",
		"directories", result.DirectoriesRemoved,
		"files", result.FilesRemoved)
	return result, nil
}

func (s *NavService) snapshot() (string, error) {
	if err := os.MkdirAll(s.snapshotDir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}
	name := "history-" + s.clock.Now().UTC().Format("20060102T150405Z") + ".db"
	dest := filepath.Join(s.snapshotDir, name)
	if err := s.database.BackupTo(dest); err != nil {
		return "", fmt.Errorf("snapshotting store before prune: %w", err)
	}
	return dest, nil
}
