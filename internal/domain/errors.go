package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup of an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTimerRunning marks an attempt to start a timer while another
	// entry is already running somewhere in the store.
	ErrTimerRunning = errors.New("a timer is already running")
	// ErrNoEntries marks a report export with nothing to render.
	ErrNoEntries = errors.New("no time entries to export")
)

// OpError wraps a failure with the name of the operation it came from, so
// the surfaced message reads "Error while starting work: ...". Every
// repository call is a leaf; the handler rewraps and surfaces the message
// without retrying.
func OpError(op string, err error) error {
	return fmt.Errorf("Error while %s: %w", op, err)
}
