// Package simd provides the float32 vector kernels used by the distance engine.
//
// # Supported Platforms
//
//   - x86-64: AVX2 (+FMA)
//   - ARM64: NEON
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects the kernel set.
// Accelerated kernels are provided by github.com/viterin/vek/vek32; the generic
// kernels are plain Go loops. Set ALIGNDIST_SIMD=generic to force the fallback.
//
// # Operations
//
//   - Reductions: Dot, Sum, SquaredL2
//   - Batch: DotBatch
//   - In place: ScaleInPlace
package simd
