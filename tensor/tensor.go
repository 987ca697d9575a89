package tensor

import (
	"fmt"
	"math"
	"slices"
)

// Tensor is a dense, row-major float32 array.
type Tensor struct {
	shape   []int
	strides []int
	data    []float32
}

// New wraps data in a tensor of the given shape.
// The tensor takes ownership of data.
func New(data []float32, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: %d elements cannot form shape %v", ErrShapeMismatch, len(data), shape)
	}
	return newTensor(data, shape), nil
}

// Zeros returns a zero-filled tensor of the given shape.
func Zeros(shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	return newTensor(make([]float32, size), shape), nil
}

// Scalar returns a rank-0 tensor holding v.
func Scalar(v float32) *Tensor {
	return newTensor([]float32{v}, nil)
}

// FromRows copies rows into a [len(rows), dim] tensor.
// All rows must have the same length.
func FromRows(rows [][]float32) (*Tensor, error) {
	if len(rows) == 0 {
		return newTensor(nil, []int{0, 0}), nil
	}
	dim := len(rows[0])
	data := make([]float32, 0, len(rows)*dim)
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrShapeMismatch, i, len(r), dim)
		}
		data = append(data, r...)
	}
	return newTensor(data, []int{len(rows), dim}), nil
}

func newTensor(data []float32, shape []int) *Tensor {
	s := slices.Clone(shape)
	return &Tensor{shape: s, strides: stridesOf(s), data: data}
}

func sizeOf(shape []int) (int, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrShapeMismatch, shape)
		}
		size *= d
	}
	return size, nil
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() []int { return slices.Clone(t.shape) }

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// Dim returns the length of axis i.
func (t *Tensor) Dim(i int) int { return t.shape[i] }

// Data returns the backing buffer in row-major order.
// Callers must not modify the buffer of a tensor they do not own.
func (t *Tensor) Data() []float32 { return t.data }

// At returns the element at the given multi-index.
// It panics if the index is out of range, like a slice access.
func (t *Tensor) At(idx ...int) float32 {
	return t.data[t.offset(idx)]
}

// Set stores v at the given multi-index.
func (t *Tensor) Set(v float32, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index %v does not match rank %d", idx, len(t.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, t.shape))
		}
		off += v * t.strides[i]
	}
	return off
}

// Item returns the value of a single-element tensor.
// It panics if the tensor does not hold exactly one element.
func (t *Tensor) Item() float32 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor: Item on tensor of shape %v", t.shape))
	}
	return t.data[0]
}

// Row returns a view of row i of a rank-2 tensor.
func (t *Tensor) Row(i int) []float32 {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("tensor: Row on tensor of rank %d", len(t.shape)))
	}
	cols := t.shape[1]
	return t.data[i*cols : (i+1)*cols : (i+1)*cols]
}

// Index returns a copy of the sub-tensor t[i] along axis 0.
func (t *Tensor) Index(i int) *Tensor {
	if len(t.shape) == 0 {
		panic("tensor: Index on scalar")
	}
	if i < 0 || i >= t.shape[0] {
		panic(fmt.Sprintf("tensor: index %d out of range for axis of length %d", i, t.shape[0]))
	}
	n := t.strides[0]
	return newTensor(slices.Clone(t.data[i*n:(i+1)*n]), t.shape[1:])
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	return newTensor(slices.Clone(t.data), t.shape)
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	if len(t.data) <= 16 {
		return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
	}
	return fmt.Sprintf("Tensor%v", t.shape)
}

// AllClose reports whether a and b have the same shape and all elements differ by at most atol.
// NaN never compares close.
func AllClose(a, b *Tensor, atol float32) bool {
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	for i, v := range a.data {
		d := math.Abs(float64(v - b.data[i]))
		if !(d <= float64(atol)) {
			return false
		}
	}
	return true
}
