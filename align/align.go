package align

import (
	"fmt"
	"slices"

	"github.com/hupe1980/aligndist/internal/pool"
	"github.com/hupe1980/aligndist/tensor"
)

// ShortestDist returns the minimum monotonic path cost through cost.
//
// cost has shape [m, n, *extra]. The result is a rank-0 tensor for a 2-D input,
// otherwise a tensor of shape [*extra]. cost is not modified.
func ShortestDist(cost *tensor.Tensor) (*tensor.Tensor, error) {
	if cost.Rank() < 2 {
		return nil, fmt.Errorf("%w: cost grid needs at least 2 dimensions, got %d", tensor.ErrShapeMismatch, cost.Rank())
	}
	shape := cost.Shape()
	m, n, extra := shape[0], shape[1], shape[2:]
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("%w: empty cost grid %v", tensor.ErrShapeMismatch, shape)
	}

	batch := cost.Size() / (m * n)
	if batch == 0 {
		return tensor.Zeros(extra...)
	}

	data := cost.Data()
	stride := n * batch

	// Two rolling rows of the accumulator; cell (i,j) occupies [j*batch, (j+1)*batch).
	sc := pool.Get(stride)
	defer pool.Put(sc)

	for i := 0; i < m; i++ {
		row := data[i*stride : (i+1)*stride]
		prev, cur := sc.Prev, sc.Cur
		for j := 0; j < n; j++ {
			c := row[j*batch : (j+1)*batch]
			acc := cur[j*batch : (j+1)*batch]
			switch {
			case i == 0 && j == 0:
				copy(acc, c)
			case i == 0:
				addInto(acc, cur[(j-1)*batch:j*batch], c)
			case j == 0:
				addInto(acc, prev[:batch], c)
			default:
				minAddInto(acc, prev[j*batch:(j+1)*batch], cur[(j-1)*batch:j*batch], c)
			}
		}
		sc.Swap()
	}

	return tensor.New(slices.Clone(sc.Prev[(n-1)*batch:]), extra...)
}

// ShortestDistScalar is ShortestDist for a single [m, n] grid.
func ShortestDistScalar(cost *tensor.Tensor) (float32, error) {
	if cost.Rank() != 2 {
		return 0, fmt.Errorf("%w: expected a 2-D cost grid, got rank %d", tensor.ErrShapeMismatch, cost.Rank())
	}
	d, err := ShortestDist(cost)
	if err != nil {
		return 0, err
	}
	return d.Item(), nil
}

func addInto(dst, from, c []float32) {
	for k := range dst {
		dst[k] = from[k] + c[k]
	}
}

func minAddInto(dst, up, left, c []float32) {
	for k := range dst {
		dst[k] = min(up[k], left[k]) + c[k]
	}
}
