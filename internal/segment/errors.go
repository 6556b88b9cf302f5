package segment

import "errors"

// Sentinel errors for segmentation. Every caller contract violation wraps
// ErrInvalidArgument so it can be tested with errors.Is.
var (
	// ErrInvalidArgument is the category of all malformed inputs.
	ErrInvalidArgument = errors.New("segment: invalid argument")

	// ErrEmptyGrid indicates a raster with no rows or no columns.
	ErrEmptyGrid = wrapInvalid("raster must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = wrapInvalid("all raster rows must have the same length")
	// ErrNegativeCoordinate indicates a pixel row or column below zero.
	ErrNegativeCoordinate = wrapInvalid("pixel coordinates must be non-negative")
	// ErrPixelOutOfGrid indicates a pixel that does not belong to the grid.
	ErrPixelOutOfGrid = wrapInvalid("pixel lies outside the grid")
	// ErrInvalidGranularity indicates a negative, NaN or infinite granularity.
	ErrInvalidGranularity = wrapInvalid("granularity must be a finite non-negative number")
	// ErrInvalidMinSize indicates a negative minimum segment size.
	ErrInvalidMinSize = wrapInvalid("minimum segment size must be non-negative")
)

type invalidError struct {
	msg string
}

func wrapInvalid(msg string) error {
	return &invalidError{msg: "segment: " + msg}
}

func (e *invalidError) Error() string { return e.msg }

func (e *invalidError) Unwrap() error { return ErrInvalidArgument }
