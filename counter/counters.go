// Package counter defines the shared counter sequence mutated by
// concurrently running workers.
//
// A Shared value is passed by pointer into every worker for the duration
// of a run. It is jointly owned by the workers between spawn and join;
// before spawn and after join the orchestrator is the sole owner and may
// read it without synchronization.
package counter

// Width is the number of counters in the shared sequence.
const Width = 3

// Shared is a fixed sequence of Width signed counters.
//
// IncrementAll performs a plain read-modify-write on every element. It
// is deliberately NOT atomic: calling it from more than one goroutine
// without holding the guard is a data race and loses updates. That
// contrast is the point of the demonstration.
type Shared struct {
	vals [Width]int64
}

// NewShared returns a counter sequence with every element at zero.
func NewShared() *Shared {
	return &Shared{}
}

// IncrementAll adds one to every counter.
//
// Each element update compiles to a separate load, add and store. When
// two goroutines interleave between the load and the store they both
// write back the same value and one increment is lost.
func (s *Shared) IncrementAll() {
	for i := range s.vals {
		s.vals[i]++
	}
}

// Value returns counter i. It panics if i is out of [0, Width),
// matching slice indexing semantics.
func (s *Shared) Value(i int) int64 {
	return s.vals[i]
}

// Snapshot copies the current counter values. The copy is only
// meaningful while the caller is the sole owner (before spawn or after
// join) or while it holds the guard.
func (s *Shared) Snapshot() [Width]int64 {
	return s.vals
}
