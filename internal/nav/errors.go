package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimit is returned when a query is asked for zero or fewer rows.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrCancelled is returned when the user aborts the picker.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNothingToSelect is returned when there are no candidates to offer
	// the picker. It is not a failure.
	ErrNothingToSelect = errors.New("nothing to select")
)

// StoreError reports that the history store could not be opened or a
// statement against it failed.
type StoreError struct {
	Path string // configured store location
	Op   string // what was being done, e.g. "listing recent directories"
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// StaleSelectionError reports that the picker returned a path that no longer
// exists, or is no longer of the expected kind.
type StaleSelectionError struct {
	Path string
	Kind Kind
}

func (e *StaleSelectionError) Error() string {
	return fmt.Sprintf("selected %s no longer exists: %s", e.Kind, e.Path)
}
