package generator

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("generator: width and height must be positive")

	// ErrInvariantViolated is returned if Generate's result ever fails
	// its own validity check. GenerateStep is built to always leave a
	// valid universe valid, so this should be unreachable; it exists as
	// a load-bearing assertion rather than a condition callers are
	// expected to handle.
	ErrInvariantViolated = errors.New("generator: produced an invalid universe")
)
