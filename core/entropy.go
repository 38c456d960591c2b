package gestures

import (
	"math/rand/v2"
	"sync"
)

// Entropy is the single randomness source behind trajectory overshoot,
// interval draws and secondary-axis jitter. Seed it for reproducible
// gestures in tests; production sequencers default to a system-seeded
// source.
type Entropy interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededEntropy returns a deterministic entropy source.
func NewSeededEntropy(seed uint64) Entropy {
	return rand.New(rand.NewPCG(seed, seed))
}

func newSystemEntropy() Entropy {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// lockedEntropy serializes draws from an underlying source. Concurrent
// gesture tasks all draw from the sequencer's single source, and a bare
// [rand.Rand] is not safe for that.
type lockedEntropy struct {
	mu    sync.Mutex
	inner Entropy
}

func (e *lockedEntropy) Float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inner.Float64()
}

func (e *lockedEntropy) IntN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inner.IntN(n)
}
