package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidDates is returned when a mutation would leave a task
	// with an end date before its start date.
	ErrInvalidDates = errors.New("end date before start date")
)

// OpError wraps a storage failure with the operation and resource that
// produced it.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
