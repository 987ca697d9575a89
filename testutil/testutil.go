package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/aligndist/internal/simd"
	"github.com/hupe1980/aligndist/tensor"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// FillGaussian fills dst with standard normal values.
func (r *RNG) FillGaussian(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = float32(r.rand.NormFloat64())
	}
}

// UniformTensor returns a tensor of the given shape with values in [0, 1).
func (r *RNG) UniformTensor(shape ...int) *tensor.Tensor {
	t := mustZeros(shape)
	r.FillUniform(t.Data())
	return t
}

// UniformRangeTensor returns a tensor of the given shape with values in [-1, 1).
func (r *RNG) UniformRangeTensor(shape ...int) *tensor.Tensor {
	t := mustZeros(shape)
	r.FillUniformRange(t.Data(), -1, 1)
	return t
}

// GaussianTensor returns a tensor of the given shape with standard normal values.
func (r *RNG) GaussianTensor(shape ...int) *tensor.Tensor {
	t := mustZeros(shape)
	r.FillGaussian(t.Data())
	return t
}

// UnitRows returns a [num, dim] tensor of L2-normalized Gaussian rows.
func (r *RNG) UnitRows(num, dim int) *tensor.Tensor {
	t := r.GaussianTensor(num, dim)
	for i := 0; i < num; i++ {
		row := t.Row(i)
		norm := simd.Dot(row, row)
		if norm == 0 {
			continue
		}
		simd.ScaleInPlace(row, float32(1/math.Sqrt(float64(norm))))
	}
	return t
}

// ClusteredSequences returns a [count, seqLen, dim] tensor where each object's
// descriptors are its own random prototype sequence plus Gaussian noise of
// the given spread. Objects built from the same prototype look alike.
func (r *RNG) ClusteredSequences(count, seqLen, dim int, spread float32) *tensor.Tensor {
	protos := r.GaussianTensor(count, seqLen, dim)
	noise := r.GaussianTensor(count, seqLen, dim)

	p, n := protos.Data(), noise.Data()
	for i := range p {
		p[i] += n[i] * spread
	}
	return protos
}

func mustZeros(shape []int) *tensor.Tensor {
	t, err := tensor.Zeros(shape...)
	if err != nil {
		panic(err)
	}
	return t
}
