package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		x, err := New(arange(6), 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, x.Shape())
		assert.Equal(t, 2, x.Rank())
		assert.Equal(t, 6, x.Size())
		assert.Equal(t, float32(5), x.At(1, 2))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := New(arange(5), 2, 3)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("NegativeDim", func(t *testing.T) {
		_, err := Zeros(2, -1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("Scalar", func(t *testing.T) {
		s := Scalar(3.5)
		assert.Equal(t, 0, s.Rank())
		assert.Equal(t, float32(3.5), s.Item())
		assert.Equal(t, float32(3.5), s.At())
	})
}

func TestFromRows(t *testing.T) {
	x, err := FromRows([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, x.Shape())
	assert.Equal(t, []float32{3, 4}, x.Row(1))

	_, err = FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShapeIsCopied(t *testing.T) {
	x, err := Zeros(2, 2)
	require.NoError(t, err)
	s := x.Shape()
	s[0] = 7
	assert.Equal(t, 2, x.Dim(0))
}

func TestIndex(t *testing.T) {
	x, err := New(arange(12), 3, 2, 2)
	require.NoError(t, err)

	sub := x.Index(1)
	assert.Equal(t, []int{2, 2}, sub.Shape())
	assert.Equal(t, []float32{4, 5, 6, 7}, sub.Data())

	sub.Set(100, 0, 0)
	assert.Equal(t, float32(4), x.At(1, 0, 0), "Index must copy")
}

func TestReshape(t *testing.T) {
	x, err := New(arange(6), 2, 3)
	require.NoError(t, err)

	y, err := x.Reshape(3, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(3), y.At(1, 1))

	_, err = x.Reshape(4, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTranspose(t *testing.T) {
	t.Run("Matrix", func(t *testing.T) {
		x, err := New(arange(6), 2, 3)
		require.NoError(t, err)

		y, err := x.Transpose(1, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, y.Shape())
		assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, y.Data())
	})

	t.Run("FourD", func(t *testing.T) {
		// [M, m, N, n] -> [m, n, M, N]
		x, err := New(arange(2*3*4*5), 2, 3, 4, 5)
		require.NoError(t, err)

		y, err := x.Transpose(1, 3, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 5, 2, 4}, y.Shape())

		for a := 0; a < 2; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 4; c++ {
					for d := 0; d < 5; d++ {
						assert.Equal(t, x.At(a, b, c, d), y.At(b, d, a, c))
					}
				}
			}
		}
	})

	t.Run("InvalidPerm", func(t *testing.T) {
		x, err := Zeros(2, 3)
		require.NoError(t, err)

		_, err = x.Transpose(0, 0)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = x.Transpose(0)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestPartSizes(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, PartSizes(10, 3))
	assert.Equal(t, []int{1, 1, 1}, PartSizes(3, 3))
	assert.Equal(t, []int{7}, PartSizes(7, 1))
}

func TestArraySplitConcat(t *testing.T) {
	x, err := New(arange(5*4*3), 5, 4, 3)
	require.NoError(t, err)

	for axis := 0; axis < 3; axis++ {
		for n := 1; n <= x.Dim(axis); n++ {
			parts, err := x.ArraySplit(n, axis)
			require.NoError(t, err)
			require.Len(t, parts, n)

			sizes := PartSizes(x.Dim(axis), n)
			for i, p := range parts {
				assert.Equal(t, sizes[i], p.Dim(axis))
			}

			back, err := Concat(axis, parts...)
			require.NoError(t, err)
			assert.Equal(t, x.Shape(), back.Shape())
			assert.Equal(t, x.Data(), back.Data())
		}
	}
}

func TestArraySplitInvalid(t *testing.T) {
	x, err := Zeros(4, 2)
	require.NoError(t, err)

	tests := []struct {
		name    string
		n, axis int
	}{
		{"Zero", 0, 0},
		{"TooMany", 5, 0},
		{"TooManyAxis1", 3, 1},
		{"BadAxis", 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := x.ArraySplit(tc.n, tc.axis)
			assert.ErrorIs(t, err, ErrInvalidSplit)
		})
	}
}

func TestConcatMismatch(t *testing.T) {
	a, _ := Zeros(2, 3)
	b, _ := Zeros(2, 4)

	_, err := Concat(0, a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	out, err := Concat(1, a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7}, out.Shape())

	_, err = Concat(0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAllClose(t *testing.T) {
	a, _ := New([]float32{1, 2}, 2)
	b, _ := New([]float32{1, 2.0005}, 2)
	c, _ := New([]float32{1, 2}, 1, 2)

	assert.True(t, AllClose(a, b, 1e-3))
	assert.False(t, AllClose(a, b, 1e-5))
	assert.False(t, AllClose(a, c, 1))
}
