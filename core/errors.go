package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCell is returned when a cell would hold a character that moves
	// the cursor by itself (newline, carriage return, other controls).
	ErrInvalidCell = errors.New("invalid cell")

	// ErrIndexOutOfRange is returned by bounds-checked accessors
	ErrIndexOutOfRange = errors.New("index out of range")
)

// OutOfRange builds an ErrIndexOutOfRange with the offending index and length
func OutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
