package nav

import "time"

// Each query returns its own row type so the fields a row carries are part of
// that query's contract. A zero time.Time means the store held no usable
// timestamp for the row.

// RecentDirectory is one directory visit, as returned by RecentDirectories.
type RecentDirectory struct {
	Path      string
	VisitedAt time.Time
}

// PopularDirectory is a directory ranked by how often it was visited.
type PopularDirectory struct {
	Path        string
	Visits      int64
	LastVisited time.Time
}

// DirectoryMatch is a directory whose path matched a search query.
type DirectoryMatch struct {
	Path   string
	Visits int64
}

// RecentFile is one file event, as returned by RecentFiles.
type RecentFile struct {
	Path     string
	FileType string
	Action   string
	OpenedAt time.Time
}

// FileMatch is a (path, type, action) group whose path matched a search query.
type FileMatch struct {
	Path     string
	FileType string
	Action   string
	Opens    int64
}

// FileStat counts file events for one (type, action) pair.
type FileStat struct {
	FileType string
	Action   string
	Opens    int64
}

// SearchResult holds the two independent result sets of SearchHistory.
type SearchResult struct {
	Directories []*DirectoryMatch
	Files       []*FileMatch
}

// PruneResult reports how many rows a sweep removed from each table.
type PruneResult struct {
	DirectoriesRemoved int
	FilesRemoved       int
}
