package guard

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ua "go.uber.org/atomic"
)

// TestAcquireRelease tests the basic acquire/release cycle and the
// holder gauge transitions around it.
func TestAcquireRelease(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	g := New()

	require.Zero(g.Holders())
	require.NoError(g.Acquire())
	require.EqualValues(1, g.Holders())
	require.NoError(g.Release())
	require.Zero(g.Holders())
}

// TestReleaseWithoutAcquire tests that releasing an unheld guard is a
// reported error, not a panic, and leaves the guard usable.
func TestReleaseWithoutAcquire(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	g := New()

	err := g.Release()
	require.ErrorIs(err, ErrNotHeld)

	// The failed release must not have disturbed the guard.
	require.NoError(g.Acquire())
	require.NoError(g.Release())
}

// TestDo tests scoped acquisition: the guard is released on every exit
// path out of the critical section.
func TestDo(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
	}{
		{
			name:    "clean exit",
			fn:      func() error { return nil },
			wantErr: nil,
		},
		{
			name:    "error mid critical section",
			fn:      func() error { return errBoom },
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			g := New()

			err := g.Do(tt.fn)
			if tt.wantErr != nil {
				require.ErrorIs(err, tt.wantErr)
			} else {
				require.NoError(err)
			}

			// Either way the guard must be free again.
			require.Zero(g.Holders())
			require.NoError(g.Acquire())
			require.NoError(g.Release())
		})
	}
}

// TestDoReleasesOnPanic tests that a panic inside the critical section
// still releases the guard before propagating.
func TestDoReleasesOnPanic(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	g := New()

	require.Panics(func() {
		_ = g.Do(func() error {
			panic("critical section failure")
		})
	})

	// The panic escaped, but the guard did not stay stuck.
	require.Zero(g.Holders())
	require.NoError(g.Acquire())
	require.NoError(g.Release())
}

// TestDoObservesHolder tests that the critical section really runs while
// holding the guard.
func TestDoObservesHolder(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	g := New()

	var seen int32
	require.NoError(g.Do(func() error {
		seen = g.Holders()
		return nil
	}))
	require.EqualValues(1, seen)
}

// TestMutualExclusion hammers the guard from many goroutines and checks
// that the holder gauge never observes more than one holder at any
// instant.
func TestMutualExclusion(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	const (
		goroutines = 8
		rounds     = 2000
	)

	g := New()
	var (
		maxHolders ua.Int32
		counter    int
		wg         sync.WaitGroup
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				err := g.Do(func() error {
					if h := g.Holders(); h > maxHolders.Load() {
						maxHolders.Store(h)
					}
					counter++
					return nil
				})
				if err != nil {
					t.Errorf("guarded round failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.EqualValues(1, maxHolders.Load(), "two goroutines held the guard at once")
	require.Equal(goroutines*rounds, counter)
	require.Zero(g.Holders())
}

// TestZeroValue tests that the zero value is a usable unlocked guard.
func TestZeroValue(t *testing.T) {
	t.Parallel()
	var g Guard
	assert.NoError(t, g.Acquire())
	assert.NoError(t, g.Release())
}
