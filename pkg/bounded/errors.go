package bounded

import "errors"

var (
	// ErrOutOfMemory is returned when a fragment does not fit in the remaining capacity.
	ErrOutOfMemory = errors.New("bounded: out of memory")

	// ErrFormat is returned when the formatter reports a bad verb or argument.
	ErrFormat = errors.New("bounded: format error")
)
