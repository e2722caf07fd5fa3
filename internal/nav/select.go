package nav

import (
	"fmt"
	"strings"
)

// Kind is the kind of filesystem entry a selection flow expects.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

func (k Kind) plural() string {
	if k == KindFile {
		return "files"
	}
	return "directories"
}

// SelectDirectory offers the limit most recent directories to the picker and
// returns the chosen directory.
//
// The returned path is empty, with a nil error, when the picker returned an
// empty line. ErrNothingToSelect means the picker was never started;
// ErrCancelled means the user aborted; *StaleSelectionError means the choice
// is no longer a directory on disk.
func (s *NavService) SelectDirectory(limit int) (string, error) {
	rows, err := s.RecentDirectories(limit)
	if err != nil {
		return "", err
	}
	// most recent first
	paths := make([]string, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		paths = append(paths, rows[i].Path)
	}
	return s.selectFrom(paths, KindDirectory)
}

// SelectFile is SelectDirectory for file events; the choice must be a
// regular file.
func (s *NavService) SelectFile(limit int) (string, error) {
	rows, err := s.RecentFiles(limit)
	if err != nil {
		return "", err
	}
	paths := make([]string, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		paths = append(paths, rows[i].Path)
	}
	return s.selectFrom(paths, KindFile)
}

func (s *NavService) selectFrom(paths []string, kind Kind) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("%w: no recent %s found in history", ErrNothingToSelect, kind.plural())
	}

	candidates := s.ResolveCandidates(paths)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no valid %s found in history", ErrNothingToSelect, kind.plural())
	}

	s.logger.Debug("starting picker", "kind", kind.String(), "candidates", len(candidates))
	raw, err := s.picker.Pick(candidates)
	if err != nil {
		return "", err
	}

	return s.ValidateSelection(raw, kind)
}

// ValidateSelection checks a line returned by the picker against the live
// filesystem. Surrounding whitespace is ignored and an empty line yields an
// empty path with no error.
func (s *NavService) ValidateSelection(raw string, kind Kind) (string, error) {
	selected := strings.TrimSpace(raw)
	if selected == "" {
		return "", nil
	}

	p, err := s.fsmgr.Resolve(selected)
	if err != nil {
		s.logger.Warn("selection no longer resolves", "path", selected, "error", err)
		return "", &StaleSelectionError{Path: selected, Kind: kind}
	}

	switch kind {
	case KindDirectory:
		if !p.IsDir() {
			return "", &StaleSelectionError{Path: selected, Kind: kind}
		}
	case KindFile:
		if !p.IsRegular() {
			return "", &StaleSelectionError{Path: selected, Kind: kind}
		}
	}

	return selected, nil
}
