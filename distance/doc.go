// Package distance provides vector normalization and all-pairs distance computation.
//
// Row dot products use the SIMD kernels of internal/simd when available
// (AVX2 on x86-64, NEON on ARM64).
//
// # Supported Metrics
//
//   - Euclidean: true L2 distance, computed from ‖a‖² − 2a·b + ‖b‖²
//   - Cosine: cosine similarity of L2-normalized rows (higher is more similar)
//
// # Usage
//
//	a, _ := tensor.FromRows([][]float32{{0, 0}, {1, 0}})
//	b, _ := tensor.FromRows([][]float32{{0, 0}, {0, 1}})
//	d, _ := distance.Compute(a, b, distance.Euclidean) // [[0 1] [1 1.414]]
//
//	m, err := distance.ParseMetric("cosine")
package distance
