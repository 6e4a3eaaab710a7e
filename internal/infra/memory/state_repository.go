package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"abbrev-quiz/internal/domain"
	"golang.org/x/sync/singleflight"
)

// StateLoader fetches the reference table from a backing store (embedded file, Postgres).
type StateLoader interface {
	LoadStates(ctx context.Context) ([]domain.StateRecord, error)
}

// StateRepository caches the reference table with a TTL to avoid repeated loads.
// A ttl of zero or less caches forever.
type StateRepository struct {
	loader StateLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	states    []domain.StateRecord
	expiresAt time.Time
}

func NewStateRepository(loader StateLoader, ttl time.Duration) *StateRepository {
	return &StateRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *StateRepository) GetStates(ctx context.Context) ([]domain.StateRecord, error) {
	if states, ok := r.cached(r.clock()); ok {
		return states, nil
	}

	result, err, _ := r.sf.Do("states", func() (interface{}, error) {
		now := r.clock()
		if states, ok := r.cached(now); ok {
			return states, nil
		}

		states, err := r.loader.LoadStates(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.states = states
		if r.ttl > 0 {
			r.expiresAt = now.Add(r.ttlWithJitter())
		}
		r.mu.Unlock()
		return states, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.StateRecord), nil
}

func (r *StateRepository) cached(now time.Time) ([]domain.StateRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.states == nil {
		return nil, false
	}
	if r.ttl > 0 && !r.expiresAt.After(now) {
		return nil, false
	}
	return r.states, true
}

// StaticStateLoader serves a fixed table (useful for tests/demos).
type StaticStateLoader struct {
	states []domain.StateRecord
}

func NewStaticStateLoader(states []domain.StateRecord) *StaticStateLoader {
	return &StaticStateLoader{states: states}
}

func (l *StaticStateLoader) LoadStates(_ context.Context) ([]domain.StateRecord, error) {
	out := make([]domain.StateRecord, len(l.states))
	copy(out, l.states)
	return out, nil
}

func (r *StateRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
