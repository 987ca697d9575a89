// Package localdist aggregates local descriptor distances into a global
// distance between objects.
//
// An object is a sequence of local descriptors (for example one feature vector
// per horizontal stripe of a pedestrian image). Two objects are compared by
// computing the euclidean distance between every pair of their descriptors,
// squashing each distance into [0, 1) with (eᵈ − 1)/(eᵈ + 1), and reducing the
// resulting grid with the shortest monotonic alignment path of package align.
//
// Parallel evaluates a whole [M, N] batch of object pairs with one distance
// matrix and one batched alignment pass; Serial is the per-pair reference.
package localdist
