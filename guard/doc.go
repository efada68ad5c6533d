// Package guard provides the mutual-exclusion lock protecting the shared
// counters, instrumented so its core invariant is observable.
//
// # Overview
//
// Guard wraps a sync.Mutex together with a holder gauge. The gauge lets
// tests (and curious demo readers) verify the property that makes mutual
// exclusion mutual exclusion: at no instant are two goroutines inside
// the critical section, so Holders never reports a value above 1.
//
// # Scoped acquisition
//
// The preferred entry point is [Guard.Do], which pairs every acquire
// with a release on all exit paths:
//
//	err := g.Do(func() error {
//		shared.IncrementAll()
//		return nil
//	})
//
// If the function returns an error, or panics, the guard is still
// released before control leaves Do. A permanently stuck guard is not a
// failure mode this package allows.
//
// # Failure modes
//
// Ordinary contention is not an error; Acquire simply blocks. The two
// error conditions are misuse of the primitive itself:
//
//   - [ErrNotHeld]: Release called while no goroutine holds the guard.
//   - [ErrCorrupt]: the holder gauge shows more than one holder inside
//     the critical section, meaning the primitive has been bypassed or
//     corrupted.
//
// Both are fatal to a run; callers propagate them instead of retrying.
//
// # Fairness
//
// Release wakes at most one blocked waiter. Ordering among waiters is
// whatever the Go runtime provides; no fairness is guaranteed or needed
// here.
package guard
