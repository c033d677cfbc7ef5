package table

import "github.com/pkg/errors"

// Error classes returned by the engine. Every error carries one of these
// as its cause, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument reports a value of the wrong shape, such as a
	// separator with too many characters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a numeric argument outside its allowed range:
	// negative sizes, widths below the structural minimum and indexes
	// outside the current bounds of a remove or add operation.
	ErrOutOfRange = errors.New("out of range")

	// ErrIndex reports a row or column selection beyond the table extents.
	ErrIndex = errors.New("index out of bounds")
)
