package distance

import (
	"fmt"

	"github.com/hupe1980/aligndist/internal/simd"
	"github.com/hupe1980/aligndist/tensor"
)

// Compute returns the [m1, m2] matrix comparing every row of a ([m1, n]) with
// every row of b ([m2, n]).
//
// Euclidean yields true distances (all entries >= 0). Cosine yields cosine
// similarities of the L2-normalized rows.
func Compute(a, b *tensor.Tensor, m Metric) (*tensor.Tensor, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}

	switch m {
	case Cosine:
		an, err := Normalize(a, 2, 1)
		if err != nil {
			return nil, err
		}
		bn, err := Normalize(b, 2, 1)
		if err != nil {
			return nil, err
		}
		return matmulT(an, bn)
	case Euclidean:
		return euclidean(a, b)
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", ErrInvalidArgument, m)
	}
}

func checkPair(a, b *tensor.Tensor) error {
	if a.Rank() != 2 || b.Rank() != 2 {
		return fmt.Errorf("%w: expected two matrices, got ranks %d and %d", tensor.ErrShapeMismatch, a.Rank(), b.Rank())
	}
	if a.Dim(1) != b.Dim(1) {
		return fmt.Errorf("%w: feature dimension %d vs %d", tensor.ErrShapeMismatch, a.Dim(1), b.Dim(1))
	}
	return nil
}

// matmulT returns a·bᵗ.
func matmulT(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	m1, m2, n := a.Dim(0), b.Dim(0), a.Dim(1)
	out := make([]float32, m1*m2)
	targets := b.Data()
	for i := 0; i < m1; i++ {
		simd.DotBatch(a.Row(i), targets, n, out[i*m2:(i+1)*m2])
	}
	return tensor.New(out, m1, m2)
}

func euclidean(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	prod, err := matmulT(a, b)
	if err != nil {
		return nil, err
	}

	m1, m2 := a.Dim(0), b.Dim(0)
	sqA := rowSquares(a)
	sqB := rowSquares(b)

	out := prod.Data()
	for i := 0; i < m1; i++ {
		row := out[i*m2 : (i+1)*m2]
		for j := range row {
			row[j] = clampedSqrt(sqA[i] - 2*row[j] + sqB[j])
		}
	}
	return prod, nil
}

func rowSquares(t *tensor.Tensor) []float32 {
	sq := make([]float32, t.Dim(0))
	for i := range sq {
		r := t.Row(i)
		sq[i] = simd.Dot(r, r)
	}
	return sq
}

// clampedSqrt takes the square root of a difference of squares, clamping
// negative rounding residue to zero first.
func clampedSqrt(v float32) float32 {
	if v < 0 {
		v = 0
	}
	return simd.Sqrt(v)
}
