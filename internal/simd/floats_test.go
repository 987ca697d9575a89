package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withKernels runs fn once per kernel set and restores the active set afterwards.
func withKernels(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	defer selectKernels(ActiveISA())

	for _, isa := range []ISA{Generic, AVX2} {
		t.Run(isa.String(), func(t *testing.T) {
			selectKernels(isa)
			fn(t)
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Positive values (size 3)", []float32{1, 2, 3}, []float32{4, 5, 6}, 32.0},
		{"Negative values (size 3)", []float32{-1, -2, -3}, []float32{-4, -5, -6}, 32.0},
		{"More than 4 (size 6)", []float32{1, 2, 3, 1, 2, 3}, []float32{4, 5, 6, 4, 5, 6}, 64.0},
		{"Mixed values (size 3)", []float32{1, -2, 3}, []float32{-4, 5, -6}, -32.0},
		{"Zero values (size 3)", []float32{0, 0, 0}, []float32{0, 0, 0}, 0.0},
		{"Positive values (size 16)", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1496.0},
		{"Empty", []float32{}, []float32{}, 0},
	}

	withKernels(t, func(t *testing.T) {
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, Dot(tc.a, tc.b), 1e-4)
			})
		}
	})
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Positive values", []float32{1, 2, 3}, []float32{4, 5, 6}, 27.0},
		{"Negative values", []float32{-1, -2, -3}, []float32{-4, -5, -6}, 27.0},
		{"1 Remainder", []float32{1, 2, 3, 1, 2, 3}, []float32{4, 5, 6, 4, 5, 6}, 54.0},
		{"Mixed values", []float32{1, -2, 3}, []float32{-4, 5, -6}, 155.0},
		{"Zero values", []float32{0, 0, 0}, []float32{0, 0, 0}, 0.0},
	}

	withKernels(t, func(t *testing.T) {
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, SquaredL2(tc.a, tc.b), 1e-3)
			})
		}
	})
}

func TestSquaredL2Exact(t *testing.T) {
	// Integer inputs have an exact float32 result under every kernel set.
	a := []float32{1, 2, 3, 1, 2, 3, 7, 9, 11}
	b := []float32{4, 5, 6, 4, 5, 6, 1, 0, 3}

	withKernels(t, func(t *testing.T) {
		assert.Equal(t, float32(235), SquaredL2(a, b))
		assert.Equal(t, float32(1), SquaredL2([]float32{0, 0}, []float32{0, 1}))
	})
}

func TestSumAndScale(t *testing.T) {
	withKernels(t, func(t *testing.T) {
		v := []float32{1, 2, 3, 4, 5}
		assert.InDelta(t, 15.0, Sum(v), 1e-5)

		ScaleInPlace(v, 2)
		assert.Equal(t, []float32{2, 4, 6, 8, 10}, v)

		assert.Equal(t, float32(0), Sum(nil))
		ScaleInPlace(nil, 3)
	})
}

func TestDotBatch(t *testing.T) {
	withKernels(t, func(t *testing.T) {
		const dim = 7
		query := randomFloats(dim)
		targets := randomFloats(5 * dim)
		out := make([]float32, 5)

		DotBatch(query, targets, dim, out)
		for i := range out {
			assert.InDelta(t, dotGeneric(query, targets[i*dim:(i+1)*dim]), out[i], 1e-5)
		}
	})
}

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, AVX2} {
		got, ok := ParseISA(" " + isa.String() + " ")
		assert.True(t, ok)
		assert.Equal(t, isa, got)
	}
	_, ok := ParseISA("sse9")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ISA(42).String())
}

func randomFloats(n int) []float32 {
	res := make([]float32, n)
	for i := range res {
		res[i] = rand.Float32() // nolint gosec
	}
	return res
}

func BenchmarkDot(b *testing.B) {
	const size = 1000000
	va := randomFloats(size)
	vb := randomFloats(size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Dot(va, vb)
	}
}
