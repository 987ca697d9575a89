package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/aligndist/tensor"
	"github.com/hupe1980/aligndist/testutil"
)

// referenceDist fills the full accumulator table of a single 2-D grid.
func referenceDist(cost [][]float32) float32 {
	m, n := len(cost), len(cost[0])
	acc := make([][]float32, m)
	for i := range acc {
		acc[i] = make([]float32, n)
		for j := range acc[i] {
			switch {
			case i == 0 && j == 0:
				acc[i][j] = cost[i][j]
			case i == 0:
				acc[i][j] = acc[i][j-1] + cost[i][j]
			case j == 0:
				acc[i][j] = acc[i-1][j] + cost[i][j]
			default:
				acc[i][j] = min(acc[i-1][j], acc[i][j-1]) + cost[i][j]
			}
		}
	}
	return acc[m-1][n-1]
}

func mustRows(t *testing.T, rows [][]float32) *tensor.Tensor {
	t.Helper()
	m, err := tensor.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestShortestDist(t *testing.T) {
	tests := []struct {
		name     string
		cost     [][]float32
		expected float32
	}{
		{"Single", [][]float32{{4.5}}, 4.5},
		{"AllZero", [][]float32{{0, 0, 0}, {0, 0, 0}}, 0},
		{"PicksCheaperPredecessor", [][]float32{{1, 3}, {2, 1}}, 4},
		{"ThreeByThree", [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 21},
		{"Row", [][]float32{{1, 2, 3, 4}}, 10},
		{"Column", [][]float32{{1}, {2}, {3}}, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ShortestDist(mustRows(t, tc.cost))
			require.NoError(t, err)
			assert.Equal(t, 0, d.Rank())
			assert.InDelta(t, tc.expected, d.Item(), 1e-6)
		})
	}
}

func TestShortestDistConstant(t *testing.T) {
	const c = float32(0.75)
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}, {8, 8}} {
		m, n := dims[0], dims[1]
		grid, err := tensor.Zeros(m, n)
		require.NoError(t, err)
		for i := range grid.Data() {
			grid.Data()[i] = c
		}

		got, err := ShortestDistScalar(grid)
		require.NoError(t, err)
		assert.InDelta(t, float32(m+n-1)*c, got, 1e-5, "m=%d n=%d", m, n)
	}
}

func TestShortestDistGolden(t *testing.T) {
	// Squashed euclidean distances between [[0,0],[1,0]] and [[0,0],[0,1]].
	t1 := float32(math.Tanh(0.5))
	t2 := float32(math.Tanh(math.Sqrt2 / 2))
	cost := mustRows(t, [][]float32{{0, t1}, {t1, t2}})

	got, err := ShortestDistScalar(cost)
	require.NoError(t, err)
	assert.InDelta(t, t1+t2, got, 1e-6)
}

func TestShortestDistBatched(t *testing.T) {
	const m, n, p, q = 4, 6, 3, 2
	cost := testutil.NewRNG(3).UniformTensor(m, n, p, q)
	data := cost.Clone().Data()

	got, err := ShortestDist(cost)
	require.NoError(t, err)
	assert.Equal(t, []int{p, q}, got.Shape())

	for a := 0; a < p; a++ {
		for b := 0; b < q; b++ {
			grid := make([][]float32, m)
			for i := range grid {
				grid[i] = make([]float32, n)
				for j := range grid[i] {
					grid[i][j] = cost.At(i, j, a, b)
				}
			}
			assert.InDelta(t, referenceDist(grid), got.At(a, b), 1e-5)
		}
	}
	assert.Equal(t, data, cost.Data())
}

func TestShortestDistEmptyBatch(t *testing.T) {
	cost, err := tensor.Zeros(2, 2, 0)
	require.NoError(t, err)

	got, err := ShortestDist(cost)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got.Shape())
}

func TestShortestDistErrors(t *testing.T) {
	v, _ := tensor.Zeros(3)
	_, err := ShortestDist(v)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = ShortestDist(tensor.Scalar(1))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	empty, _ := tensor.Zeros(0, 3)
	_, err = ShortestDist(empty)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	batched, _ := tensor.Zeros(2, 2, 2)
	_, err = ShortestDistScalar(batched)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func BenchmarkShortestDistBatched(b *testing.B) {
	cost, _ := tensor.Zeros(8, 8, 256, 256)
	for i := range cost.Data() {
		cost.Data()[i] = float32(i%17) / 17
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ShortestDist(cost)
	}
}
