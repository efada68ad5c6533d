package runner

import (
	"fmt"
	"sync"
)

// Spawn launches n independently scheduled goroutines over task and
// blocks until every one of them has terminated. It is the bare
// spawn-then-join-all pattern the rest of the package builds on, exposed
// for the spawning demonstration.
//
// task receives the worker id (0 to n-1). Spawn returns once all tasks
// have run to completion; there is no cancellation.
func Spawn(n int, task func(id int)) error {
	if n <= 0 {
		return fmt.Errorf("runner: invalid worker count %d", n)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			task(id)
		}(i)
	}
	wg.Wait()
	return nil
}
