// Package aligndist computes distances between sets of feature vectors for
// person re-identification matching.
//
// The engine is a library of pure functions over dense float32 tensors:
//
//   - distance: L2/Lp normalization and all-pairs euclidean or cosine matrices
//   - align: shortest monotonic alignment path over a local-cost grid, batched
//     over arbitrary trailing dimensions
//   - localdist: aligned distance between objects described by sequences of
//     local descriptors, per pair or for a whole batch at once
//   - lowmem: chunked evaluation of large matrices to bound peak memory
//
// The Engine type in this package wraps those functions with structured
// logging, metrics and resource limits.
//
// # Quick Start
//
//	e := aligndist.New()
//
//	// Global features: [M, d] and [N, d]
//	d, _ := e.ComputeDist(ctx, query, gallery, "euclidean")
//
//	// Local features: [M, m, d] and [N, n, d]
//	ld, _ := e.LocalDist(ctx, queryParts, galleryParts)
//
//	// Huge galleries: evaluate in 16 blocks of gallery rows.
//	big, _ := e.LowMemoryMatrixOp(ctx, queryParts, galleryParts,
//	    localdist.Parallel, lowmem.SplitY, 0, 16)
//
// # Errors
//
// All failures are usage errors reported synchronously. Match them with
// errors.Is against ErrInvalidArgument, ErrShapeMismatch, ErrNotSupported,
// ErrInvalidSplit and ErrMemoryLimitExceeded.
package aligndist
