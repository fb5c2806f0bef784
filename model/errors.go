package model

import "github.com/pkg/errors"

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 30

var (
	// ErrOutOfRange is returned when a coordinate lies outside [0,width)x[0,height).
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrAllocation is returned when width*height cannot be allocated.
	ErrAllocation = errors.New("grid too large to allocate")
	// ErrInvalidDimensions is returned for a zero or negative width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidArgument is returned for other malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// checkDimensions validates a width/height pair and returns the cell count
func checkDimensions(op string, width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Wrapf(ErrInvalidDimensions, "[%s] %dx%d", op, width, height)
	}
	if width > MaxCells/height {
		return 0, errors.Wrapf(ErrAllocation, "[%s] %dx%d exceeds %d cells", op, width, height, MaxCells)
	}
	return width * height, nil
}
