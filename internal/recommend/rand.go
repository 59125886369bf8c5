package recommend

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the single randomness source the ranker and surprise picker
// draw from. Injecting it keeps every randomized behavior seedable in
// tests; constructors reject a nil source instead of falling back to a
// fixed seed.
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// NewSeededRand returns a Rand producing a deterministic stream for seed.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeRand returns a Rand seeded from the clock, for production use.
func NewTimeRand() Rand {
	return NewSeededRand(time.Now().UnixNano())
}
