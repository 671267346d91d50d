package game

import "errors"

// Validation errors. A guess rejected with one of these consumes no try;
// the caller prompts again.
var (
	ErrLengthMismatch  = errors.New("wrong number of colors")
	ErrDuplicateColors = errors.New("duplicate colors")
	ErrUnknownColor    = errors.New("unknown color")
)

// Fatal errors.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrGameOver             = errors.New("game is over - no turns allowed")
	ErrInputAborted         = errors.New("input aborted")
)

// IsValidationError reports whether err is one of the recoverable guess
// validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrDuplicateColors) ||
		errors.Is(err, ErrUnknownColor)
}
