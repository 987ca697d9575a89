package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/aligndist/internal/simd"
	"github.com/hupe1980/aligndist/tensor"
)

// Normalize divides every 1-D fiber of t along axis by its Lp norm plus Epsilon.
//
// order selects the norm: 2 is Euclidean, 1 is Manhattan, math.Inf(1) is the
// max-abs norm, any other positive value is the general Lp norm. Zero fibers stay
// zero. The result has the same shape as t; t is not modified.
func Normalize(t *tensor.Tensor, order float64, axis int) (*tensor.Tensor, error) {
	if axis < 0 || axis >= t.Rank() {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", ErrInvalidArgument, axis, t.Rank())
	}
	if !(order > 0) {
		return nil, fmt.Errorf("%w: norm order must be positive, got %v", ErrInvalidArgument, order)
	}

	shape := t.Shape()
	length := shape[axis]
	outer, inner := 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	for _, d := range shape[axis+1:] {
		inner *= d
	}

	src := t.Data()
	out := make([]float32, len(src))
	copy(out, src)

	// Contiguous fibers take the kernel path.
	if inner == 1 && order == 2 {
		for o := 0; o < outer; o++ {
			fiber := out[o*length : (o+1)*length]
			norm := simd.Sqrt(simd.Dot(fiber, fiber))
			simd.ScaleInPlace(fiber, 1/(norm+Epsilon))
		}
		return tensor.New(out, shape...)
	}

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*length*inner + in
			var acc float64
			for k := 0; k < length; k++ {
				acc = accumulate(acc, float64(out[base+k*inner]), order)
			}
			scale := 1 / (finish(acc, order) + Epsilon)
			for k := 0; k < length; k++ {
				out[base+k*inner] *= scale
			}
		}
	}
	return tensor.New(out, shape...)
}

func accumulate(acc, v, order float64) float64 {
	v = math.Abs(v)
	switch {
	case math.IsInf(order, 1):
		return math.Max(acc, v)
	case order == 1:
		return acc + v
	case order == 2:
		return acc + v*v
	default:
		return acc + math.Pow(v, order)
	}
}

func finish(acc, order float64) float32 {
	switch {
	case math.IsInf(order, 1), order == 1:
		return float32(acc)
	case order == 2:
		return float32(math.Sqrt(acc))
	default:
		return float32(math.Pow(acc, 1/order))
	}
}
