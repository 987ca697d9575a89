package tensor

import "errors"

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidSplit is returned when a split count is outside [1, length of the split axis].
	ErrInvalidSplit = errors.New("invalid split")
)
