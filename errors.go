package openrange

import (
	"fmt"
)

// rangeError is the concrete type behind the library's sentinel errors. All
// detected failures surface synchronously to the caller; nothing is
// retried or recovered internally.
type rangeError string

func (e rangeError) Error() string {
	return string(e)
}

// Errorf wraps the sentinel with detail, so callers can match with
// errors.Is while still seeing the offending value.
func (e rangeError) Errorf(format string, args ...interface{}) error {
	args = append([]interface{}{e}, args...)
	return fmt.Errorf("%w: "+format, args...)
}

// Sentinel errors of the range library.
var (
	// ErrInvalidArgument covers zero steps, non-numeric bounds and repeat
	// counts below 1.
	ErrInvalidArgument = rangeError("invalid argument")

	// ErrNotFound signals an Index lookup for a value not on the
	// progression's lattice or outside its bounds.
	ErrNotFound = rangeError("value not in range")

	// ErrIndexOutOfRange signals positional access outside [0, Len()),
	// after normalizing negative indices.
	ErrIndexOutOfRange = rangeError("index out of range")

	// ErrUnsupportedType signals an item handed to a converter that the
	// converter does not know how to map.
	ErrUnsupportedType = rangeError("unsupported item type")
)

// ParseError reports a spec-string token that does not match the range
// grammar. The whole parse fails on the first bad token; no partial result
// is ever returned.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse range specification: %q", e.Token)
}
