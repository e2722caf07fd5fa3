// Package report renders query results as indented JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"fzf-nav/internal/nav"
	"fzf-nav/internal/ui"
)

const timeLayout = "2006-01-02 15:04:05"

type directoryEntry struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp,omitempty"`
	Visits    int64  `json:"visits,omitempty"`
}

type fileEntry struct {
	Path      string `json:"path"`
	FileType  string `json:"file_type"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp,omitempty"`
	Opens     int64  `json:"opens,omitempty"`
}

type fileStat struct {
	FileType string `json:"file_type"`
	Action   string `json:"action"`
	Opens    int64  `json:"opens"`
}

type searchResult struct {
	Directories []directoryEntry `json:"directories"`
	Files       []fileEntry      `json:"files"`
}

type pruneResult struct {
	DirectoriesRemoved int `json:"directories_removed"`
	FilesRemoved       int `json:"files_removed"`
}

// Printer writes one JSON document per call to out.
type Printer struct {
	out io.Writer
	ui  ui.UI
	loc *time.Location
}

// NewPrinter returns a Printer that renders timestamps in local time.
func NewPrinter(out io.Writer, u ui.UI) *Printer {
	return &Printer{out: out, ui: u, loc: time.Local}
}

func (p *Printer) RecentDirectories(rows []*nav.RecentDirectory) error {
	out := make([]directoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, directoryEntry{Path: r.Path, Timestamp: p.stamp(r.VisitedAt)})
	}
	return p.write(out)
}

func (p *Printer) PopularDirectories(rows []*nav.PopularDirectory) error {
	out := make([]directoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, directoryEntry{Path: r.Path, Timestamp: p.stamp(r.LastVisited), Visits: r.Visits})
	}
	return p.write(out)
}

func (p *Printer) RecentFiles(rows []*nav.RecentFile) error {
	out := make([]fileEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, fileEntry{
			Path:      r.Path,
			FileType:  r.FileType,
			Action:    r.Action,
			Timestamp: p.stamp(r.OpenedAt),
		})
	}
	return p.write(out)
}

func (p *Printer) FileStats(rows []*nav.FileStat) error {
	out := make([]fileStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, fileStat{FileType: r.FileType, Action: r.Action, Opens: r.Opens})
	}
	return p.write(out)
}

func (p *Printer) Search(res *nav.SearchResult) error {
	out := searchResult{
		Directories: make([]directoryEntry, 0, len(res.Directories)),
		Files:       make([]fileEntry, 0, len(res.Files)),
	}
	for _, d := range res.Directories {
		out.Directories = append(out.Directories, directoryEntry{Path: d.Path, Visits: d.Visits})
	}
	for _, f := range res.Files {
		out.Files = append(out.Files, fileEntry{
			Path:     f.Path,
			FileType: f.FileType,
			Action:   f.Action,
			Opens:    f.Opens,
		})
	}
	return p.write(out)
}

func (p *Printer) Prune(res *nav.PruneResult) error {
	return p.write(pruneResult{
		DirectoriesRemoved: res.DirectoriesRemoved,
		FilesRemoved:       res.FilesRemoved,
	})
}

// stamp formats t in the printer's zone; a zero time is left out.
func (p *Printer) stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(p.loc).Format(timeLayout)
}

func (p *Printer) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	data = append(data, '\n')
	if _, err := io.WriteString(p.out, p.ui.JSON(data)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
