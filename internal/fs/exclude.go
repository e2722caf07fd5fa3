package fs

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// excludePattern is a parsed exclude pattern with its matching strategy.
type excludePattern struct {
	pattern   string
	matchPath bool // true = match against the whole absolute path; false = match any path element
}

// ExcludeMatcher decides which history paths are kept out of the picker.
// Patterns without '/' are matched against every element of the path, so
// "node_modules" hides the directory and everything below it. Patterns with
// '/' are matched against the whole absolute path; a leading ~ is expanded.
type ExcludeMatcher struct {
	patterns []excludePattern
}

// NewExcludeMatcher creates an ExcludeMatcher from raw pattern strings.
// Blank entries and entries starting with '#' are skipped, as are patterns
// filepath.Match rejects.
func NewExcludeMatcher(rawPatterns []string) *ExcludeMatcher {
	var patterns []excludePattern
	for _, raw := range rawPatterns {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if expanded, err := homedir.Expand(raw); err == nil {
			raw = expanded
		}
		if _, err := filepath.Match(raw, ""); err != nil {
			continue
		}
		patterns = append(patterns, excludePattern{
			pattern:   filepath.ToSlash(raw),
			matchPath: strings.Contains(raw, "/"),
		})
	}
	return &ExcludeMatcher{patterns: patterns}
}

// Match reports whether absPath is excluded.
func (m *ExcludeMatcher) Match(absPath string) bool {
	if len(m.patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(filepath.Clean(absPath))
	elements := strings.Split(strings.Trim(normalized, "/"), "/")

	for _, p := range m.patterns {
		if p.matchPath {
			if ok, _ := filepath.Match(p.pattern, normalized); ok {
				return true
			}
			continue
		}
		for _, el := range elements {
			if ok, _ := filepath.Match(p.pattern, el); ok {
				return true
			}
		}
	}
	return false
}
