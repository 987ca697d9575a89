package localdist

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/aligndist/align"
	"github.com/hupe1980/aligndist/distance"
	"github.com/hupe1980/aligndist/tensor"
)

// ErrNotSupported is returned by Dist for inputs that are neither both 2-D nor both 3-D.
var ErrNotSupported = errors.New("input shape not supported")

// Squash maps a non-negative distance e to (exp(e) − 1)/(exp(e) + 1).
// It is evaluated as tanh(e/2), which is identical and stays finite for large e.
func Squash(e float32) float32 {
	return float32(math.Tanh(float64(e) / 2))
}

// SquashTensor returns a fresh tensor with Squash applied elementwise.
func SquashTensor(t *tensor.Tensor) *tensor.Tensor {
	out := t.Clone()
	squashInPlace(out.Data())
	return out
}

func squashInPlace(v []float32) {
	for i, e := range v {
		v[i] = Squash(e)
	}
}

// Meta returns the aligned local distance between two descriptor sequences
// x ([m, d]) and y ([n, d]).
func Meta(x, y *tensor.Tensor) (float32, error) {
	d, err := distance.Compute(x, y, distance.Euclidean)
	if err != nil {
		return 0, err
	}
	squashInPlace(d.Data())
	return align.ShortestDistScalar(d)
}

// Serial returns the [M, N] matrix of Meta over every pair of x ([M, m, d]) and y ([N, n, d]).
// It is the reference for Parallel and much slower.
func Serial(x, y *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBatch(x, y); err != nil {
		return nil, err
	}

	bigM, bigN := x.Dim(0), y.Dim(0)
	ys := make([]*tensor.Tensor, bigN)
	for j := range ys {
		ys[j] = y.Index(j)
	}

	out, err := tensor.Zeros(bigM, bigN)
	if err != nil {
		return nil, err
	}
	for i := 0; i < bigM; i++ {
		xi := x.Index(i)
		for j := 0; j < bigN; j++ {
			v, err := Meta(xi, ys[j])
			if err != nil {
				return nil, fmt.Errorf("pair (%d, %d): %w", i, j, err)
			}
			out.Set(v, i, j)
		}
	}
	return out, nil
}

// Parallel returns the same [M, N] matrix as Serial using one distance matrix
// over all descriptors and one batched alignment pass.
func Parallel(x, y *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBatch(x, y); err != nil {
		return nil, err
	}

	bigM, m, d := x.Dim(0), x.Dim(1), x.Dim(2)
	bigN, n := y.Dim(0), y.Dim(1)

	xf, err := x.Reshape(bigM*m, d)
	if err != nil {
		return nil, err
	}
	yf, err := y.Reshape(bigN*n, d)
	if err != nil {
		return nil, err
	}

	// [M*m, N*n]
	dist, err := distance.Compute(xf, yf, distance.Euclidean)
	if err != nil {
		return nil, err
	}
	squashInPlace(dist.Data())

	// [M*m, N*n] -> [M, m, N, n] -> [m, n, M, N]
	grid, err := dist.Reshape(bigM, m, bigN, n)
	if err != nil {
		return nil, err
	}
	grid, err = grid.Transpose(1, 3, 0, 2)
	if err != nil {
		return nil, err
	}

	return align.ShortestDist(grid)
}

// Dist dispatches on rank: two 2-D sequences yield a rank-0 tensor (Meta),
// two 3-D batches yield an [M, N] tensor (Parallel).
func Dist(x, y *tensor.Tensor) (*tensor.Tensor, error) {
	switch {
	case x.Rank() == 2 && y.Rank() == 2:
		v, err := Meta(x, y)
		if err != nil {
			return nil, err
		}
		return tensor.Scalar(v), nil
	case x.Rank() == 3 && y.Rank() == 3:
		return Parallel(x, y)
	default:
		return nil, fmt.Errorf("%w: ranks %d and %d", ErrNotSupported, x.Rank(), y.Rank())
	}
}

func checkBatch(x, y *tensor.Tensor) error {
	if x.Rank() != 3 || y.Rank() != 3 {
		return fmt.Errorf("%w: expected [count, seq_len, dim] batches, got ranks %d and %d", tensor.ErrShapeMismatch, x.Rank(), y.Rank())
	}
	if x.Dim(2) != y.Dim(2) {
		return fmt.Errorf("%w: feature dimension %d vs %d", tensor.ErrShapeMismatch, x.Dim(2), y.Dim(2))
	}
	if x.Dim(1) == 0 || y.Dim(1) == 0 {
		return fmt.Errorf("%w: empty descriptor sequences, lengths %d and %d", tensor.ErrShapeMismatch, x.Dim(1), y.Dim(1))
	}
	return nil
}
