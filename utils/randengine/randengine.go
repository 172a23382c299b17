// Package randengine wraps golang.org/x/exp/rand with the thread-safe
// helpers vehicle agents need when picking a speed and a pair of
// boundary lanes.
package randengine

import (
	"flag"
	"sync"

	"golang.org/x/exp/rand"
)

var seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset applied to every engine's seed")

// Engine is a seeded PRNG safe for concurrent use by a single vehicle
// goroutine's own calls (each vehicle owns one Engine; engines are
// never shared across vehicles).
type Engine struct {
	*rand.Rand
	mtx sync.Mutex
}

// New creates an engine seeded deterministically from seed plus the
// process-wide seed offset flag.
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// IntnSafe returns a random int in [0, n) under the engine's mutex.
func (e *Engine) IntnSafe(n int) int {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Intn(n)
}

// Float64RangeSafe returns a random float64 uniformly distributed in
// [lo, hi) under the engine's mutex.
func (e *Engine) Float64RangeSafe(lo, hi float64) float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return lo + e.Float64()*(hi-lo)
}
