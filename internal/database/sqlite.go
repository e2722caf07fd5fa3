package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fzf-nav/internal/database/migrations"
	"fzf-nav/internal/nav"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// timestampLayout is how SQLite's datetime() renders a timestamp.
const timestampLayout = "2006-01-02 15:04:05"

// Table names are constants; user input never reaches SQL text.
const (
	directoryTable = "directory_history"
	fileTable      = "file_history"
)

// SQLiteStore implements the Database interface on a SQLite file.
// It holds no connection: every call opens one and closes it before returning,
// so concurrent invocations from several shells only share the file.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store for the SQLite file at path. The file is
// not opened until the first query.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// OpenConnection opens a connection to the SQLite file at path.
// Unless create is set the file must already exist, so a mistyped store path
// is reported instead of silently creating an empty database. Writers wait up
// to five seconds for a lock held by another process, and transactions take
// the write lock when they begin.
func OpenConnection(path string, create bool) (*sql.DB, error) {
	mode := "rw"
	if create {
		mode = "rwc"
	}
	dsn := fmt.Sprintf("file:%s?mode=%s&_busy_timeout=5000&_txlock=immediate", escapePath(path), mode)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sql.Open is lazy; surface a missing or unreadable file here.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// escapePath escapes the characters that would otherwise end the file name
// part of a SQLite URI.
func escapePath(path string) string {
	return strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
}

// Init creates the store file if needed and applies the baseline schema.
// It returns the schema version afterwards.
func (s *SQLiteStore) Init() (uint, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return 0, s.fail("creating store directory", err)
	}

	db, err := OpenConnection(s.path, true)
	if err != nil {
		return 0, s.fail("opening store", err)
	}
	defer db.Close()

	if err := migrations.MigrateUp(db); err != nil {
		return 0, s.fail("applying schema", err)
	}
	version, _, err := migrations.Version(db)
	if err != nil {
		return 0, s.fail("reading schema version", err)
	}
	return version, nil
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := OpenConnection(s.path, false)
	if err != nil {
		return nil, s.fail("opening store", err)
	}
	return db, nil
}

func (s *SQLiteStore) fail(op string, err error) error {
	return &nav.StoreError{Path: s.path, Op: op, Err: err}
}

// Queries

func (s *SQLiteStore) RecentDirectories(limit int) ([]*nav.RecentDirectory, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// Pick the newest rows first, then hand them back oldest first.
	rows, err := db.QueryContext(context.Background(), `
		SELECT path, datetime(timestamp)
		FROM (
			SELECT path, timestamp FROM directory_history
			ORDER BY timestamp DESC
			LIMIT ?
		)
		ORDER BY timestamp ASC`, limit)
	if err != nil {
		return nil, s.fail("listing recent directories", err)
	}
	defer rows.Close()

	result := []*nav.RecentDirectory{}
	for rows.Next() {
		var path string
		var ts sql.NullString
		if err := rows.Scan(&path, &ts); err != nil {
			return nil, s.fail("reading recent directories", err)
		}
		result = append(result, &nav.RecentDirectory{Path: path, VisitedAt: parseTimestamp(ts)})
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("reading recent directories", err)
	}
	return result, nil
}

func (s *SQLiteStore) RecentFiles(limit int) ([]*nav.RecentFile, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), `
		SELECT path, file_type, action, datetime(timestamp)
		FROM (
			SELECT path, file_type, action, timestamp FROM file_history
			ORDER BY timestamp DESC
			LIMIT ?
		)
		ORDER BY timestamp ASC`, limit)
	if err != nil {
		return nil, s.fail("listing recent files", err)
	}
	defer rows.Close()

	result := []*nav.RecentFile{}
	for rows.Next() {
		var f nav.RecentFile
		var ts sql.NullString
		if err := rows.Scan(&f.Path, &f.FileType, &f.Action, &ts); err != nil {
			return nil, s.fail("reading recent files", err)
		}
		f.OpenedAt = parseTimestamp(ts)
		result = append(result, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("reading recent files", err)
	}
	return result, nil
}

func (s *SQLiteStore) PopularDirectories(limit int) ([]*nav.PopularDirectory, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), `
		SELECT path, COUNT(*) AS visits, datetime(MAX(timestamp))
		FROM directory_history
		GROUP BY path
		ORDER BY visits DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, s.fail("ranking directories", err)
	}
	defer rows.Close()

	result := []*nav.PopularDirectory{}
	for rows.Next() {
		var d nav.PopularDirectory
		var ts sql.NullString
		if err := rows.Scan(&d.Path, &d.Visits, &ts); err != nil {
			return nil, s.fail("reading directory ranking", err)
		}
		d.LastVisited = parseTimestamp(ts)
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("reading directory ranking", err)
	}
	return result, nil
}

func (s *SQLiteStore) FileStats() ([]*nav.FileStat, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), `
		SELECT file_type, action, COUNT(*) AS opens
		FROM file_history
		GROUP BY file_type, action
		ORDER BY opens DESC`)
	if err != nil {
		return nil, s.fail("computing file stats", err)
	}
	defer rows.Close()

	result := []*nav.FileStat{}
	for rows.Next() {
		var st nav.FileStat
		if err := rows.Scan(&st.FileType, &st.Action, &st.Opens); err != nil {
			return nil, s.fail("reading file stats", err)
		}
		result = append(result, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("reading file stats", err)
	}
	return result, nil
}

// SearchHistory matches query anywhere in the stored path. The wildcards are
// added here and the pattern is bound as a parameter; LIKE special characters
// typed by the user keep their LIKE meaning.
func (s *SQLiteStore) SearchHistory(query string) (*nav.SearchResult, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx := context.Background()
	pattern := "%" + query + "%"

	dirs, err := searchDirectories(ctx, db, pattern)
	if err != nil {
		return nil, s.fail("searching directories", err)
	}
	files, err := searchFiles(ctx, db, pattern)
	if err != nil {
		return nil, s.fail("searching files", err)
	}

	return &nav.SearchResult{Directories: dirs, Files: files}, nil
}

func searchDirectories(ctx context.Context, db *sql.DB, pattern string) ([]*nav.DirectoryMatch, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM directory_history
		WHERE path LIKE ?
		GROUP BY path
		ORDER BY visits DESC`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*nav.DirectoryMatch{}
	for rows.Next() {
		var m nav.DirectoryMatch
		if err := rows.Scan(&m.Path, &m.Visits); err != nil {
			return nil, err
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}

func searchFiles(ctx context.Context, db *sql.DB, pattern string) ([]*nav.FileMatch, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT path, file_type, action, COUNT(*) AS opens
		FROM file_history
		WHERE path LIKE ?
		GROUP BY path, file_type, action
		ORDER BY opens DESC`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*nav.FileMatch{}
	for rows.Next() {
		var m nav.FileMatch
		if err := rows.Scan(&m.Path, &m.FileType, &m.Action, &m.Opens); err != nil {
			return nil, err
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}

// parseTimestamp converts a datetime() result to UTC time. NULL, which
// datetime() yields for values it cannot interpret, becomes the zero time.
func parseTimestamp(ts sql.NullString) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	t, err := time.ParseInLocation(timestampLayout, ts.String, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Maintenance

// PruneStale deletes every row whose path exists reports false for, across
// both tables, inside one transaction. Any failure rolls the whole sweep back.
func (s *SQLiteStore) PruneStale(exists func(path string) bool) (*nav.PruneResult, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.fail("starting prune transaction", err)
	}
	defer tx.Rollback()

	dirsRemoved, err := pruneTable(ctx, tx, directoryTable, exists)
	if err != nil {
		return nil, s.fail("pruning directories", err)
	}

	filesRemoved, err := pruneTable(ctx, tx, fileTable, exists)
	if err != nil {
		return nil, s.fail("pruning files", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, s.fail("committing prune", err)
	}

	return &nav.PruneResult{
		DirectoriesRemoved: dirsRemoved,
		FilesRemoved:       filesRemoved,
	}, nil
}

// pruneTable deletes the rows of table whose path no longer exists and
// returns how many were deleted.
func pruneTable(ctx context.Context, tx *sql.Tx, table string, exists func(string) bool) (int, error) {
	stale, err := staleIDs(ctx, tx, table, exists)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, "DELETE FROM "+table+" WHERE id = ?")
	if err != nil {
		return 0, fmt.Errorf("preparing delete: %w", err)
	}
	defer stmt.Close()

	for _, id := range stale {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return 0, fmt.Errorf("deleting row %d: %w", id, err)
		}
	}
	return len(stale), nil
}

// staleIDs reads every row of table and returns the ids whose path fails the
// existence check. The cursor is drained before any delete runs.
func staleIDs(ctx context.Context, tx *sql.Tx, table string, exists func(string) bool) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, path FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}
	defer rows.Close()

	var stale []int64
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if !exists(path) {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return stale, nil
}

// Path returns the store file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// BackupTo creates a complete copy of the store at destPath using VACUUM INTO.
func (s *SQLiteStore) BackupTo(destPath string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("VACUUM INTO ?", destPath); err != nil {
		return s.fail("backing up store", err)
	}
	return nil
}

// Compile-time check that SQLiteStore implements nav.Database interface
var _ nav.Database = (*SQLiteStore)(nil)
