//go:build race

package runner

// raceEnabled reports whether the race detector is compiled in. The
// deliberately racy multi-worker test skips itself under -race because
// its whole point is to execute an unsynchronized interleaving.
const raceEnabled = true
