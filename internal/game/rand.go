package game

import (
	"math/rand"
	"sync"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it, and
// tests substitute scripted sources to assert exact permutations.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a Rand seeded with seed that is safe for concurrent use.
func NewRand(seed int64) Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
