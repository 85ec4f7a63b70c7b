package mars

import "errors"

// Errors returned by the conversion functions. Callers should test for them
// with errors.Is; the returned errors wrap these with call-specific detail.
var (
	// ErrInvalidNumber reports a NaN or infinite numeric input.
	ErrInvalidNumber = errors.New("not a finite number")

	// ErrInvalidTime reports a time value with no usable instant (the zero time).
	ErrInvalidTime = errors.New("invalid time")

	// ErrOutOfRange reports a numeric input outside its valid domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrYearNotTabulated reports a Mars year missing from the epoch table.
	ErrYearNotTabulated = errors.New("mars year not tabulated")

	// ErrSyntax reports text that is not a valid Mars time.
	ErrSyntax = errors.New("invalid mars time syntax")
)
