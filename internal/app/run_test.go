package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"fzf-nav/internal/nav"
)

func TestNewRun(t *testing.T) {
	started := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	r := NewRun("prune", started)

	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", r.ID, err)
	}
	if r.Command != "prune" || !r.Started.Equal(started) || r.Status != "success" {
		t.Errorf("NewRun() = %+v", r)
	}
	if other := NewRun("prune", started); other.ID == r.ID {
		t.Error("two runs share an ID")
	}
}

func TestRun_Record(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "success"},
		{"cancelled", fmt.Errorf("%w: fzf exited with status 130", nav.ErrCancelled), "cancelled"},
		{"nothing", fmt.Errorf("%w: no recent files found in history", nav.ErrNothingToSelect), "nothing"},
		{"error", errors.New("disk full"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRun("change-to-file", time.Now())
			r.Record(tt.err)
			if r.Status != tt.want {
				t.Errorf("Status = %q, want %q", r.Status, tt.want)
			}
		})
	}
}
