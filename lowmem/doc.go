// Package lowmem evaluates large matrix-producing functions piecewise.
//
// MatrixOp splits one operand into contiguous parts along an axis, evaluates the
// function on each part against the untouched other operand and concatenates
// the partial matrices. The result is identical to calling the function on the
// full operands, but each call only materializes a fraction of the output and
// of the function's intermediate buffers.
//
//	// [M, N] euclidean distances, computed in 8 row blocks.
//	d, err := lowmem.MatrixOp(x, y, euclid, lowmem.SplitX, 0, 8)
//
// If a single part still does not fit, increase the split count;
// SplitsForBudget derives one from a byte budget.
package lowmem
