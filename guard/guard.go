package guard

import (
	"errors"
	"sync"

	ua "go.uber.org/atomic"
)

var (
	// ErrNotHeld is returned by Release when no goroutine holds the guard.
	ErrNotHeld = errors.New("guard: release without matching acquire")

	// ErrCorrupt is returned by Acquire when the holder gauge reports
	// more than one goroutine inside the critical section.
	ErrCorrupt = errors.New("guard: multiple holders inside critical section")
)

// Guard is a binary mutual-exclusion lock shared by reference across all
// workers of a run. It is created unlocked before the workers are
// spawned and outlives them all.
//
// The zero value is usable; New exists for symmetry with the rest of the
// module.
type Guard struct {
	mu      sync.Mutex
	holders ua.Int32
}

// New returns an unlocked guard.
func New() *Guard {
	return &Guard{}
}

// Acquire blocks the calling goroutine until no other goroutine holds
// the guard, then grants it exclusive holding rights.
//
// Contention is not an error. Acquire fails only if the primitive itself
// is corrupted: after the lock is obtained the holder gauge must read
// exactly 1, anything else means the guard was bypassed and the run
// cannot be trusted.
func (g *Guard) Acquire() error {
	g.mu.Lock()
	if h := g.holders.Inc(); h != 1 {
		g.holders.Dec()
		g.mu.Unlock()
		return ErrCorrupt
	}
	return nil
}

// Release relinquishes exclusive holding rights, waking at most one
// blocked waiter. Releasing a guard that is not held returns ErrNotHeld
// instead of panicking, so a misbehaving worker surfaces as an ordinary
// fatal error at the orchestrator.
//
// Release must be called by the goroutine that acquired the guard; the
// gauge check below assumes only the current holder moves it.
func (g *Guard) Release() error {
	if h := g.holders.Dec(); h != 0 {
		g.holders.Inc()
		return ErrNotHeld
	}
	g.mu.Unlock()
	return nil
}

// Do runs fn inside the critical section. The guard is released on every
// exit path out of fn, including a panic, so the acquire always pairs
// with exactly one release before control leaves Do.
//
// An error from fn takes precedence over a release error.
func (g *Guard) Do(fn func() error) (err error) {
	if aerr := g.Acquire(); aerr != nil {
		return aerr
	}
	defer func() {
		if rerr := g.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}

// Holders reports how many goroutines are currently inside the critical
// section. It exists so the mutual-exclusion invariant can be observed
// from outside; the value never exceeds 1 unless the guard has been
// corrupted.
func (g *Guard) Holders() int32 {
	return g.holders.Load()
}
