package simd

import (
	"math"

	"github.com/viterin/vek/vek32"
)

var (
	dotImpl       = dotGeneric
	sumImpl       = sumGeneric
	squaredL2Impl = squaredL2Generic
	scaleImpl     = scaleGeneric
)

// selectKernels installs the kernel set for isa.
func selectKernels(isa ISA) {
	if isa == Generic {
		dotImpl = dotGeneric
		sumImpl = sumGeneric
		squaredL2Impl = squaredL2Generic
		scaleImpl = scaleGeneric
		return
	}
	dotImpl = vek32.Dot
	sumImpl = vek32.Sum
	squaredL2Impl = squaredL2Vek
	scaleImpl = vek32.MulNumber_Inplace
}

// Dot calculates the dot product of two vectors.
//
// SAFETY: This function assumes len(a) == len(b).
func Dot(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return dotImpl(a, b)
}

// DotBatch calculates dot products of query against a batch of vectors.
// targets is a flattened array of N vectors, each of dimension dim.
// out must have length N (len(targets) / dim).
func DotBatch(query []float32, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 || len(query) < dim {
		for i := range out {
			out[i] = 0
		}
		return
	}

	q := query[:dim]
	n := min(len(out), len(targets)/dim)
	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = dotImpl(q, targets[offset:offset+dim])
	}
}

// Sum returns the sum of all elements.
func Sum(a []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return sumImpl(a)
}

// SquaredL2 calculates the squared L2 distance.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return squaredL2Impl(a, b)
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	if len(a) == 0 {
		return
	}
	scaleImpl(a, scalar)
}

// Sqrt returns the float32 square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func dotGeneric(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

func sumGeneric(a []float32) float32 {
	var ret float32
	for _, v := range a {
		ret += v
	}
	return ret
}

func squaredL2Generic(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}
	return distance
}

func squaredL2Vek(a, b []float32) float32 {
	d := vek32.Sub(a, b)
	return vek32.Dot(d, d)
}

func scaleGeneric(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}
