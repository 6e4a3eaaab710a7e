package cli

import (
	"context"
	"log"
	"time"

	"abbrev-quiz/internal/app"
	"abbrev-quiz/internal/config"
	"abbrev-quiz/internal/data"
	"abbrev-quiz/internal/game"
	"abbrev-quiz/internal/infra/memory"
	pgloader "abbrev-quiz/internal/infra/postgres"
	infraredis "abbrev-quiz/internal/infra/redis"
	"abbrev-quiz/internal/random"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

// deps holds the backing services chosen by config. Close releases them.
type deps struct {
	redis *redis.Client
	pool  *pgxpool.Pool
}

func openDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	d := &deps{}
	if cfg.Redis.Addr != "" {
		d.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.pool = pool
	}
	return d, nil
}

func (d *deps) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			log.Printf("close redis: %v", err)
		}
	}
}

// stateRepository reads the reference table from Postgres when configured,
// otherwise from the embedded file, cached in Redis or in memory.
func (d *deps) stateRepository(cfg config.Config) app.StateRepository {
	var loader memory.StateLoader = data.EmbeddedLoader{}
	if d.pool != nil {
		loader = pgloader.NewStateLoader(d.pool)
	}

	ttl := config.TTLDuration(cfg.States.TTL, time.Hour)
	if d.redis != nil {
		return infraredis.NewStateRepository(d.redis, loader, ttl)
	}
	return memory.NewStateRepository(loader, ttl)
}

func (d *deps) sessionRepository(cfg config.Config) app.SessionRepository {
	ttl := config.TTLDuration(cfg.Session.TTL, 2*time.Hour)
	if d.redis != nil {
		return infraredis.NewSessionStore(d.redis, ttl)
	}
	return memory.NewSessionStore(ttl)
}

func newRand(cfg config.Config) (game.Rand, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return nil, err
		}
	}
	return game.NewRand(seed), nil
}
