package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParallelSleepOverlaps tests the timing demonstration property:
// joining n sleepers of duration d takes about d, not n×d. The upper
// bound is generous so a loaded scheduler does not flake the test.
func TestParallelSleepOverlaps(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	const (
		sleepers = 4
		delay    = 100 * time.Millisecond
	)

	elapsed, err := ParallelSleep(sleepers, delay)
	require.NoError(err)
	require.GreaterOrEqual(elapsed, delay, "cannot finish before a single sleeper")
	require.Less(elapsed, sleepers*delay, "sleepers ran sequentially, not in parallel")
}

func TestParallelSleepSingle(t *testing.T) {
	t.Parallel()
	elapsed, err := ParallelSleep(1, 10*time.Millisecond)
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
}

func TestParallelSleepInvalidInput(t *testing.T) {
	t.Parallel()
	_, err := ParallelSleep(0, time.Millisecond)
	assert.Error(t, err)
	_, err = ParallelSleep(-2, time.Millisecond)
	assert.Error(t, err)
	_, err = ParallelSleep(1, -time.Millisecond)
	assert.Error(t, err)
}
