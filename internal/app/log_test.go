package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNavHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		runID   string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			runID:   "run-123",
			level:   slog.LevelInfo,
			message: "pruned stale history",
			want:    "2024-06-15T14:30:45Z\tINFO\trun-123\tpruned stale history\n",
		},
		{
			name:    "debug level",
			runID:   "run-456",
			level:   slog.LevelDebug,
			message: "starting picker",
			want:    "2024-06-15T14:30:45Z\tDEBUG\trun-456\tstarting picker\n",
		},
		{
			name:    "with record attrs",
			runID:   "run-789",
			level:   slog.LevelInfo,
			message: "pruned",
			attrs:   []slog.Attr{slog.String("path", "/tmp/a"), slog.Int("files", 42)},
			want:    "2024-06-15T14:30:45Z\tINFO\trun-789\tpruned\tpath=/tmp/a\tfiles=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &navHandler{w: &buf, runID: tt.runID}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestNavHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := (&navHandler{w: &buf, runID: "run-1"}).WithAttrs([]slog.Attr{slog.String("a", "1")})
	h := base.WithAttrs([]slog.Attr{slog.String("command", "prune")})

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "done", 0)
	r.AddAttrs(slog.String("key", "abc"))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "\ta=1\tcommand=prune\tkey=abc\n") {
		t.Errorf("attrs out of order or missing: %q", got)
	}

	buf.Reset()
	if err := base.Handle(context.Background(), slog.NewRecord(ts, slog.LevelInfo, "done", 0)); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got := buf.String(); strings.Contains(got, "command=") {
		t.Errorf("WithAttrs modified the parent handler: %q", got)
	}
}

func TestNavHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&navHandler{w: &buf, runID: "run-1"})

	logger.WithGroup("prune").Info("swept", "files", 2, slog.Group("snapshot", "path", "/tmp/s.db"))

	got := buf.String()
	if !strings.HasSuffix(got, "\tswept\tprune.files=2\tprune.snapshot.path=/tmp/s.db\n") {
		t.Errorf("grouped line = %q", got)
	}
}

// countingWriter records how many Write calls it receives.
type countingWriter struct {
	writes int
	bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestNavHandler_OneWritePerLine(t *testing.T) {
	w := &countingWriter{}
	logger := slog.New(&navHandler{w: w, runID: "run-1"}).With("command", "recent-dirs")

	logger.Info("run finished", "status", "success", "n", 3)

	if w.writes != 1 {
		t.Errorf("Write called %d times for one record, want 1", w.writes)
	}
	if strings.Count(w.String(), "\n") != 1 {
		t.Errorf("output = %q, want exactly one line", w.String())
	}
}

func TestDiscardLogger(t *testing.T) {
	logger := discardLogger("run-1")
	logger.Error("not written anywhere")
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger rejects error records")
	}
}

func TestNavHandler_Enabled(t *testing.T) {
	h := &navHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false without a level, want true", level)
		}
	}

	h = &navHandler{level: slog.LevelWarn}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(INFO) = true at WARN")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled(ERROR) = false at WARN")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	logger, f, err := newLogger(dir, "test-run", slog.LevelInfo)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "n", 1)
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, "fzf-nav.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	got := string(data)
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line written at info level: %q", got)
	}
	if !strings.Contains(got, "\tINFO\ttest-run\tshown\tn=1\n") {
		t.Errorf("log = %q", got)
	}
}
