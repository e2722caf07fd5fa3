package app

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fzf-nav/internal/nav"
)

// Run tracks one CLI invocation for the log. Every line the invocation
// writes carries the run ID, so interleaved lines from concurrent shells can
// be told apart.
type Run struct {
	ID      string
	Command string
	Started time.Time
	Status  string // "success", "cancelled", "nothing" or "error"
}

// NewRun creates a run with a fresh random ID.
func NewRun(command string, started time.Time) *Run {
	return &Run{
		ID:      uuid.NewString(),
		Command: command,
		Started: started,
		Status:  "success",
	}
}

// Record sets the run status from the outcome of an operation.
func (r *Run) Record(err error) {
	switch {
	case err == nil:
	case errors.Is(err, nav.ErrCancelled):
		r.Status = "cancelled"
	case errors.Is(err, nav.ErrNothingToSelect):
		r.Status = "nothing"
	default:
		r.Status = "error"
	}
}
