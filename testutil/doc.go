// Package testutil provides testing utilities for aligndist.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Tensors
//
//	rng := testutil.NewRNG(seed)
//	x := rng.UniformTensor(4, 6, 128)   // uniform [0, 1)
//	y := rng.GaussianTensor(5, 6, 128)  // standard normal
//
// # Descriptor Sequences
//
//	people := rng.ClusteredSequences(10, 6, 128, 0.1)
package testutil
