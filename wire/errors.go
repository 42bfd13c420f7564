package wire

import "errors"

// The decode error taxonomy. Every decode path in chainwire surfaces
// one of these three, usually wrapped with entity and field context via
// fmt.Errorf("...: %w", err). Match with errors.Is.
var (
	// ErrIncorrectLength reports a buffer shorter than required at a
	// fixed, size-prefixed, or self-described boundary.
	ErrIncorrectLength = errors.New("incorrect length")

	// ErrStatusCodeOutOfRange reports a receipt status byte outside
	// the defined mapping.
	ErrStatusCodeOutOfRange = errors.New("receipt status code out of range")

	// ErrStringParse reports text field bytes that are not valid UTF-8.
	ErrStringParse = errors.New("string parse error")
)
