package tensor

import (
	"fmt"
	"slices"
)

// Reshape returns a tensor with the same data and a new shape.
// The result shares the backing buffer with t.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if size != len(t.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, t.shape, shape)
	}
	return newTensor(t.data, shape), nil
}

// Transpose returns a contiguous copy with axes permuted:
// axis i of the result is axis perm[i] of t.
func (t *Tensor) Transpose(perm ...int) (*Tensor, error) {
	r := len(t.shape)
	if len(perm) != r {
		return nil, fmt.Errorf("%w: permutation %v for rank %d", ErrShapeMismatch, perm, r)
	}

	seen := make([]bool, r)
	outShape := make([]int, r)
	srcStrides := make([]int, r)
	for i, p := range perm {
		if p < 0 || p >= r || seen[p] {
			return nil, fmt.Errorf("%w: invalid permutation %v", ErrShapeMismatch, perm)
		}
		seen[p] = true
		outShape[i] = t.shape[p]
		srcStrides[i] = t.strides[p]
	}

	out := make([]float32, len(t.data))
	idx := make([]int, r)
	src := 0
	for k := range out {
		out[k] = t.data[src]
		// Odometer step over the output index, tracking the source offset.
		for d := r - 1; d >= 0; d-- {
			idx[d]++
			src += srcStrides[d]
			if idx[d] < outShape[d] {
				break
			}
			src -= srcStrides[d] * idx[d]
			idx[d] = 0
		}
	}

	return newTensor(out, outShape), nil
}

// PartSizes returns the part lengths of an as-equal-as-possible split of length into n parts.
// The first length%n parts are one element longer than the rest.
func PartSizes(length, n int) []int {
	sizes := make([]int, n)
	base, extra := length/n, length%n
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// ArraySplit splits t into n contiguous parts along axis.
// Parts differ in length by at most one. n must be in [1, t.Dim(axis)].
func (t *Tensor) ArraySplit(n, axis int) ([]*Tensor, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", ErrInvalidSplit, axis, len(t.shape))
	}
	length := t.shape[axis]
	if n < 1 || n > length {
		return nil, fmt.Errorf("%w: %d parts for axis of length %d", ErrInvalidSplit, n, length)
	}

	outer, inner := t.outerInner(axis)
	parts := make([]*Tensor, 0, n)
	start := 0
	for _, sz := range PartSizes(length, n) {
		data := make([]float32, outer*sz*inner)
		for o := 0; o < outer; o++ {
			src := (o*length + start) * inner
			copy(data[o*sz*inner:(o+1)*sz*inner], t.data[src:src+sz*inner])
		}
		shape := slices.Clone(t.shape)
		shape[axis] = sz
		parts = append(parts, newTensor(data, shape))
		start += sz
	}
	return parts, nil
}

// Concat joins parts along axis. All parts must agree on every other dimension.
func Concat(axis int, parts ...*Tensor) (*Tensor, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: nothing to concatenate", ErrShapeMismatch)
	}
	first := parts[0]
	if axis < 0 || axis >= len(first.shape) {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", ErrShapeMismatch, axis, len(first.shape))
	}

	length := 0
	for i, p := range parts {
		if len(p.shape) != len(first.shape) {
			return nil, fmt.Errorf("%w: part %d has rank %d, expected %d", ErrShapeMismatch, i, len(p.shape), len(first.shape))
		}
		for d := range p.shape {
			if d != axis && p.shape[d] != first.shape[d] {
				return nil, fmt.Errorf("%w: part %d has shape %v, expected %v off axis %d", ErrShapeMismatch, i, p.shape, first.shape, axis)
			}
		}
		length += p.shape[axis]
	}

	outer, inner := first.outerInner(axis)
	data := make([]float32, 0, outer*length*inner)
	for o := 0; o < outer; o++ {
		for _, p := range parts {
			n := p.shape[axis] * inner
			data = append(data, p.data[o*n:(o+1)*n]...)
		}
	}

	shape := slices.Clone(first.shape)
	shape[axis] = length
	return newTensor(data, shape), nil
}

// outerInner returns the element counts before and after axis.
func (t *Tensor) outerInner(axis int) (outer, inner int) {
	outer, inner = 1, 1
	for _, d := range t.shape[:axis] {
		outer *= d
	}
	for _, d := range t.shape[axis+1:] {
		inner *= d
	}
	return outer, inner
}
