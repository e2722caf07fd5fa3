package nav

// Database provides read access to the history store and the pruning sweep.
// Implementations open a connection per call and release it before returning.
type Database interface {
	// RecentDirectories returns the limit most recent visits, oldest first.
	RecentDirectories(limit int) ([]*RecentDirectory, error)

	// RecentFiles returns the limit most recent file events, oldest first.
	RecentFiles(limit int) ([]*RecentFile, error)

	// PopularDirectories returns directories ordered by visit count, highest first.
	PopularDirectories(limit int) ([]*PopularDirectory, error)

	// FileStats returns event counts per (file type, action), highest first.
	FileStats() ([]*FileStat, error)

	// SearchHistory returns directories and files whose path contains query.
	SearchHistory(query string) (*SearchResult, error)

	// PruneStale deletes, in a single transaction, every row whose path
	// exists reports false for. Either all stale rows go or none do.
	PruneStale(exists func(path string) bool) (*PruneResult, error)

	// BackupTo writes a complete copy of the store to destPath.
	BackupTo(destPath string) error

	// Path returns the location of the store.
	Path() string
}
