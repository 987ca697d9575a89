package pool

import (
	"sync"
	"testing"
)

func TestScratch_Basic(t *testing.T) {
	s := Get(10)
	defer Put(s)

	if len(s.Prev) != 10 || len(s.Cur) != 10 {
		t.Fatalf("expected rows of length 10, got %d and %d", len(s.Prev), len(s.Cur))
	}

	s.Prev[0] = 1
	s.Cur[0] = 2
	s.Swap()
	if s.Prev[0] != 2 || s.Cur[0] != 1 {
		t.Error("Swap should exchange the rows")
	}
}

func TestScratch_Grow(t *testing.T) {
	s := Get(4)
	defer Put(s)

	big := DefaultRowCapacity * 3
	s.Resize(big)
	if len(s.Prev) != big || len(s.Cur) != big {
		t.Errorf("expected rows of length %d", big)
	}

	s.Resize(2)
	if len(s.Prev) != 2 || cap(s.Prev) < big {
		t.Error("shrinking should keep the capacity")
	}
}

func TestScratch_OversizedNotRetained(t *testing.T) {
	s := Get(MaxRetainedCapacity + 1)
	Put(s)

	// Oversized buffers are dropped; the next Get must still work.
	s2 := Get(1)
	defer Put(s2)
	if len(s2.Prev) != 1 {
		t.Error("expected a usable scratch")
	}
}

func TestScratch_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := Get(n + j)
				for k := range s.Cur {
					s.Cur[k] = float32(k)
				}
				s.Swap()
				if s.Prev[n+j-1] != float32(n+j-1) {
					t.Error("row content lost")
				}
				Put(s)
			}
		}(i + 1)
	}
	wg.Wait()
}

func BenchmarkGetPut(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := Get(1024)
		Put(s)
	}
}
