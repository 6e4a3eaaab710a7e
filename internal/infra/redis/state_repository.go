package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"abbrev-quiz/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const statesKey = "abbrev:states"

// StateLoader fetches the reference table from a backing store (embedded file, Postgres).
type StateLoader interface {
	LoadStates(ctx context.Context) ([]domain.StateRecord, error)
}

// StateRepository caches the reference table in a Redis hash and falls back
// to a loader on cache miss.
// Rows are stored as: HSET abbrev:states {position} {json record}
type StateRepository struct {
	client *redis.Client
	loader StateLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewStateRepository(client *redis.Client, loader StateLoader, ttl time.Duration) *StateRepository {
	return &StateRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *StateRepository) GetStates(ctx context.Context) ([]domain.StateRecord, error) {
	if states, ok := r.cached(ctx); ok {
		return states, nil
	}

	result, err, _ := r.sf.Do(statesKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if states, ok := r.cached(ctx); ok {
			return states, nil
		}

		states, err := r.loader.LoadStates(ctx)
		if err != nil {
			return nil, err
		}

		pipe := r.client.TxPipeline()
		pipe.Del(ctx, statesKey)
		for i, rec := range states {
			raw, err := json.Marshal(rec)
			if err != nil {
				return nil, fmt.Errorf("encode state %s: %w", rec.State, err)
			}
			pipe.HSet(ctx, statesKey, strconv.Itoa(i), raw)
		}
		if ttl := r.ttlWithJitter(); ttl > 0 {
			pipe.Expire(ctx, statesKey, ttl)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("cache states in redis: %v", err)
		}

		return states, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.StateRecord), nil
}

func (r *StateRepository) cached(ctx context.Context) ([]domain.StateRecord, bool) {
	rows, err := r.client.HGetAll(ctx, statesKey).Result()
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	states, err := buildStatesFromCache(rows)
	if err != nil {
		log.Printf("decode cached states: %v", err)
		return nil, false
	}
	return states, true
}

func buildStatesFromCache(rows map[string]string) ([]domain.StateRecord, error) {
	type positioned struct {
		pos int
		rec domain.StateRecord
	}
	entries := make([]positioned, 0, len(rows))
	for field, raw := range rows {
		pos, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", field, err)
		}
		var rec domain.StateRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", pos, err)
		}
		entries = append(entries, positioned{pos: pos, rec: rec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })

	states := make([]domain.StateRecord, len(entries))
	for i, e := range entries {
		states[i] = e.rec
	}
	return states, nil
}

func (r *StateRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
