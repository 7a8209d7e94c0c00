package board

import "errors"

// ErrInvalidDimensions is returned when width or height is not positive.
var ErrInvalidDimensions = errors.New("board: width and height must be positive")

// ErrMalformedText is returned by FromString when the input does not
// parse as a rectangular grid of box-drawing glyphs.
var ErrMalformedText = errors.New("board: malformed board text")
