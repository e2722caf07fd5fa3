package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"fzf-nav/internal/database"
)

// NewTestStore creates a history store in a temp directory with the schema applied.
// The directory is removed when the test completes.
func NewTestStore(t *testing.T) *database.SQLiteStore {
	t.Helper()

	s := database.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if _, err := s.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return s
}

// AddVisit records a directory visit the way the shell recorder would.
func AddVisit(t *testing.T, s *database.SQLiteStore, path string, at time.Time) {
	t.Helper()
	exec(t, s, "INSERT INTO directory_history (path, timestamp) VALUES (?, ?)",
		path, at.UTC().Format("2006-01-02 15:04:05"))
}

// AddFileEvent records a file event the way the shell recorder would.
func AddFileEvent(t *testing.T, s *database.SQLiteStore, path, fileType, action string, at time.Time) {
	t.Helper()
	exec(t, s, "INSERT INTO file_history (path, file_type, action, timestamp) VALUES (?, ?, ?, ?)",
		path, fileType, action, at.UTC().Format("2006-01-02 15:04:05"))
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, s *database.SQLiteStore, table string) int {
	t.Helper()

	db, err := database.OpenConnection(s.Path(), false)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

func exec(t *testing.T, s *database.SQLiteStore, query string, args ...any) {
	t.Helper()

	db, err := database.OpenConnection(s.Path(), false)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
