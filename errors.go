package aligndist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/aligndist/distance"
	"github.com/hupe1980/aligndist/localdist"
	"github.com/hupe1980/aligndist/resource"
	"github.com/hupe1980/aligndist/tensor"
)

var (
	// ErrInvalidArgument is returned for unsupported distance modes and invalid normalization parameters.
	ErrInvalidArgument = distance.ErrInvalidArgument

	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrNotSupported is returned by LocalDist for inputs that are neither 2-D nor 3-D.
	ErrNotSupported = localdist.ErrNotSupported

	// ErrInvalidSplit is returned for split counts outside [1, length of the split axis].
	ErrInvalidSplit = tensor.ErrInvalidSplit

	// ErrMemoryLimitExceeded is returned when partial results exceed the memory budget.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrDimensionMismatch indicates that two vector collections disagree on the feature dimension.
//
// It matches ErrShapeMismatch with errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// translateError attaches the feature dimensions of a and b to shape errors
// caused by a feature dimension mismatch.
func translateError(err error, a, b *tensor.Tensor, featureAxis int) error {
	if err == nil || !errors.Is(err, ErrShapeMismatch) {
		return err
	}
	if featureAxis < 0 || a.Rank() <= featureAxis || b.Rank() != a.Rank() {
		return err
	}
	if da, db := a.Dim(featureAxis), b.Dim(featureAxis); da != db {
		return &ErrDimensionMismatch{Expected: da, Actual: db, cause: err}
	}
	return err
}
