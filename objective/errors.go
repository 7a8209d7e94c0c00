package objective

import "errors"

// Sentinel errors returned by New when a candidate objective is invalid
// (see the package-level error taxonomy: these are "Invalid input"
// failures, surfaced synchronously rather than deferred to the solver).
var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("objective: width and height must be positive")

	// ErrCenterOutOfBounds is returned when a center's footprint would
	// fall outside the grid.
	ErrCenterOutOfBounds = errors.New("objective: center footprint out of bounds")

	// ErrOverlappingFootprints is returned when two centers' footprints
	// share a cell, which would make the objective unsatisfiable (no
	// cell can belong to two galaxies).
	ErrOverlappingFootprints = errors.New("objective: center footprints overlap")

	// ErrMalformedText is returned by FromString when the input does not
	// parse as an objective diagram.
	ErrMalformedText = errors.New("objective: malformed objective text")
)
