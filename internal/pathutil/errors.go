package pathutil

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is wrapped by every AllocationError.
	ErrAllocation = errors.New("path buffer allocation failed")

	// ErrMalformedPath is returned when a path contains a NUL byte or an
	// explicit length does not fit the input.
	ErrMalformedPath = errors.New("malformed path")
)

// AllocationError reports an allocator that could not provide a buffer.
type AllocationError struct {
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("allocate %d bytes: %s", e.Size, e.Err)
	}
	return fmt.Sprintf("allocate %d bytes: %s", e.Size, ErrAllocation)
}

// Unwrap lets errors.Is match both ErrAllocation and the allocator's own cause.
func (e *AllocationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrAllocation, e.Err}
	}
	return []error{ErrAllocation}
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedPath, fmt.Sprintf(format, args...))
}
