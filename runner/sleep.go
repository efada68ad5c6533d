package runner

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ParallelSleep launches n sleepers that each block for d, then joins
// all of them and returns the wall-clock time from first spawn to last
// join.
//
// With true parallel scheduling the elapsed time tracks d, not n×d:
// the sleepers overlap. This is the timing demonstration from the
// tutorial sequence; the measurement shows overlap and nothing else.
func ParallelSleep(n int, d time.Duration) (time.Duration, error) {
	if n <= 0 {
		return 0, fmt.Errorf("runner: invalid sleeper count %d", n)
	}
	if d < 0 {
		return 0, fmt.Errorf("runner: negative sleep duration %v", d)
	}

	start := time.Now()

	var eg errgroup.Group
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			time.Sleep(d)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}
