package fs

import "testing"

func TestNewExcludeMatcher(t *testing.T) {
	t.Run("skips blank entries, comments and bad patterns", func(t *testing.T) {
		t.Parallel()
		m := NewExcludeMatcher([]string{"", "  ", "# comment", "[", "*.log"})
		if len(m.patterns) != 1 {
			t.Fatalf("expected 1 pattern, got %d", len(m.patterns))
		}
		if m.patterns[0].pattern != "*.log" {
			t.Errorf("expected *.log, got %s", m.patterns[0].pattern)
		}
	})

	t.Run("classifies path vs element patterns", func(t *testing.T) {
		t.Parallel()
		m := NewExcludeMatcher([]string{"node_modules", "/tmp/*"})
		if m.patterns[0].matchPath {
			t.Error("node_modules should not be a path pattern")
		}
		if !m.patterns[1].matchPath {
			t.Error("/tmp/* should be a path pattern")
		}
	})
}

func TestExcludeMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{
			name:     "no patterns",
			patterns: nil,
			path:     "/home/user/src",
			want:     false,
		},
		{
			name:     "element pattern matches last element",
			patterns: []string{"node_modules"},
			path:     "/home/user/app/node_modules",
			want:     true,
		},
		{
			name:     "element pattern matches inner element",
			patterns: []string{"node_modules"},
			path:     "/home/user/app/node_modules/lodash",
			want:     true,
		},
		{
			name:     "element glob",
			patterns: []string{"*.log"},
			path:     "/var/log/app.log",
			want:     true,
		},
		{
			name:     "element pattern does not match substring",
			patterns: []string{"node"},
			path:     "/home/user/node_modules",
			want:     false,
		},
		{
			name:     "path pattern matches direct child",
			patterns: []string{"/tmp/*"},
			path:     "/tmp/scratch",
			want:     true,
		},
		{
			name:     "path pattern star does not cross separators",
			patterns: []string{"/tmp/*"},
			path:     "/tmp/scratch/deeper",
			want:     false,
		},
		{
			name:     "trailing slash is cleaned",
			patterns: []string{"/tmp/*"},
			path:     "/tmp/scratch/",
			want:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewExcludeMatcher(tt.patterns)
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
