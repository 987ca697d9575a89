// Package tensor provides the dense float32 N-D array exchanged by the distance engine.
//
// A Tensor is a row-major buffer plus a shape. Rank-0 tensors hold exactly one
// element and represent scalars.
//
// # Ownership
//
// Every operation returns fresh output. Reshape is the only exception: it returns a
// new header over the same buffer, which is safe because no engine operation mutates
// its inputs.
//
//	t, _ := tensor.New([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
//	tt, _ := t.Transpose(1, 0)      // shape [3, 2], copied
//	parts, _ := t.ArraySplit(2, 1)  // shapes [2, 2] and [2, 1]
//	back, _ := tensor.Concat(1, parts...)
package tensor
