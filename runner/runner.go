// Package runner orchestrates the parallel counter demonstration: it
// spawns a fixed set of workers over a shared counter sequence, waits
// for all of them to terminate, and reports the final state.
//
// Two variants exist side by side. Run protects every increment with the
// guard and always produces workers × iterations in each counter.
// RunUnsynced omits the guard so concurrent increments race; its result
// is intentionally non-deterministic and demonstrates lost updates.
package runner

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	ua "go.uber.org/atomic"

	"github.com/kolkov/parcount/counter"
	"github.com/kolkov/parcount/guard"
)

const (
	// DefaultWorkers matches the fixed worker count of the original
	// tutorial programs.
	DefaultWorkers = 5

	// DefaultIterations is the per-worker increment count. Large enough
	// that the unsynchronized variant visibly loses updates.
	DefaultIterations = 100000
)

// Runner spawns workers and joins them. A Runner is stateless between
// runs apart from the running gauge; the shared counters and the guard
// are created fresh for every run so runs never interfere.
type Runner struct {
	workers    int
	iterations int
	logger     hclog.Logger

	// running counts workers that have been spawned and not yet
	// terminated. It must read 0 whenever no run is in flight.
	running ua.Int32
}

// New creates a Runner.
//
// Worker and iteration counts must be positive; a nonsensical
// configuration is rejected here rather than discovered mid-run. This is
// the closest Go analog of a spawn failure: goroutine creation itself
// cannot fail recoverably, so the only spawn-time error is asking for an
// impossible set of workers.
func New(opt ...Option) (*Runner, error) {
	opts := getOpts(opt...)
	if opts.withWorkers <= 0 {
		return nil, fmt.Errorf("runner: invalid worker count %d", opts.withWorkers)
	}
	if opts.withIterations <= 0 {
		return nil, fmt.Errorf("runner: invalid iteration count %d", opts.withIterations)
	}
	return &Runner{
		workers:    opts.withWorkers,
		iterations: opts.withIterations,
		logger:     opts.withLogger,
	}, nil
}

// Workers returns the number of workers a run spawns.
func (r *Runner) Workers() int { return r.workers }

// Iterations returns the per-worker increment count.
func (r *Runner) Iterations() int { return r.iterations }

// Expected returns the value every counter must hold after a
// synchronized run: workers × iterations.
func (r *Runner) Expected() int64 {
	return int64(r.workers) * int64(r.iterations)
}

// Running reports how many workers are currently executing. After any
// run returns it must be 0: the join phase does not complete while a
// worker is still alive.
func (r *Runner) Running() int32 {
	return r.running.Load()
}

// Run executes the synchronized variant: counters start at zero, the
// guard starts unlocked, every worker wraps each increment in the
// guard's critical section, and Run blocks until every worker has
// terminated, in whatever order they finish.
//
// Worker failures (guard misuse or corruption) are collected and
// returned together; any failure makes the whole run fatal. On success
// each counter equals Expected.
func (r *Runner) Run() (*counter.Shared, error) {
	shared := counter.NewShared()
	g := guard.New()

	errs := r.spawn(func(id int) error {
		return incrementLoop(shared, g, r.iterations)
	})
	if errs != nil {
		return nil, errs
	}

	r.logger.Info("all workers joined", "counters", shared.Snapshot())
	return shared, nil
}

// RunUnsynced executes the race-demonstration variant: the same loop
// structure with the guard omitted. Increments are plain unsynchronized
// read-modify-write sequences, so concurrent workers lose updates and
// the final counters are undefined beyond being at most Expected.
//
// Run it at least twice to watch the values differ between runs.
func (r *Runner) RunUnsynced() *counter.Shared {
	shared := counter.NewShared()

	// The worker func cannot fail: there is no guard to misuse.
	_ = r.spawn(func(id int) error {
		incrementLoopUnsynced(shared, r.iterations)
		return nil
	})

	r.logger.Info("all workers joined", "counters", shared.Snapshot())
	return shared
}

// RunTimed is Run with wall-clock measurement from just before the first
// spawn to just after the last join. The duration demonstrates overlap;
// it carries no correctness weight.
func (r *Runner) RunTimed() (*counter.Shared, time.Duration, error) {
	start := time.Now()
	shared, err := r.Run()
	return shared, time.Since(start), err
}

// spawn launches r.workers goroutines over task and joins all of them,
// aggregating every worker error. Join order is irrelevant: all workers
// run concurrently regardless of the order Wait observes them finish.
func (r *Runner) spawn(task func(id int) error) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs *multierror.Error
	)

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		r.running.Inc()
		go func(id int) {
			defer wg.Done()
			defer r.running.Dec()

			r.logger.Debug("worker started", "id", id)
			if err := task(id); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("worker %d: %w", id, err))
				mu.Unlock()
			}
			r.logger.Debug("worker finished", "id", id)
		}(i)
	}

	wg.Wait()
	return errs.ErrorOrNil()
}

// incrementLoop is the synchronized worker task. The critical section
// wraps only the increment, not the loop, so worker executions still
// interleave instead of serializing the whole workload.
func incrementLoop(s *counter.Shared, g *guard.Guard, iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := g.Do(func() error {
			s.IncrementAll()
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// incrementLoopUnsynced is the racy variant: identical loop, no guard.
func incrementLoopUnsynced(s *counter.Shared, iterations int) {
	for i := 0; i < iterations; i++ {
		s.IncrementAll()
	}
}
