// Package pool provides object pools for allocation-free alignment passes.
// Uses sync.Pool for automatic memory reuse of the accumulator rows.
package pool

import "sync"

const (
	// DefaultRowCapacity is the initial capacity of each accumulator row.
	DefaultRowCapacity = 4096

	// MaxRetainedCapacity caps the rows kept in the pool so one huge batch
	// does not pin its buffers forever.
	MaxRetainedCapacity = 1 << 22
)

// Scratch holds the two rolling accumulator rows of the alignment DP.
type Scratch struct {
	Prev []float32
	Cur  []float32
}

var scratchPool = sync.Pool{
	New: func() interface{} {
		return &Scratch{
			Prev: make([]float32, 0, DefaultRowCapacity),
			Cur:  make([]float32, 0, DefaultRowCapacity),
		}
	},
}

// Get retrieves a Scratch whose rows have length n.
// Row contents are unspecified.
func Get(n int) *Scratch {
	s := scratchPool.Get().(*Scratch)
	s.Resize(n)
	return s
}

// Put returns a Scratch to the pool for reuse.
func Put(s *Scratch) {
	if cap(s.Prev) > MaxRetainedCapacity || cap(s.Cur) > MaxRetainedCapacity {
		return
	}
	scratchPool.Put(s)
}

// Resize sets both rows to length n, growing them when needed.
func (s *Scratch) Resize(n int) {
	s.Prev = grow(s.Prev, n)
	s.Cur = grow(s.Cur, n)
}

// Swap exchanges the rows.
func (s *Scratch) Swap() {
	s.Prev, s.Cur = s.Cur, s.Prev
}

func grow(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n, max(n, 2*cap(buf)))
	}
	return buf[:n]
}
