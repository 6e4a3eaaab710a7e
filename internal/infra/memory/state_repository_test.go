package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"abbrev-quiz/internal/data"
	"abbrev-quiz/internal/domain"
)

func TestStateRepositoryCaches(t *testing.T) {
	loader := &countingLoader{StateLoader: NewStaticStateLoader(data.MustStates())}
	repo := NewStateRepository(loader, time.Minute)

	states, err := repo.GetStates(context.Background())
	if err != nil {
		t.Fatalf("get states: %v", err)
	}
	if len(states) != domain.RoundsPerGame {
		t.Fatalf("expected %d states, got %d", domain.RoundsPerGame, len(states))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetStates(context.Background()); err != nil {
		t.Fatalf("get states 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStateRepositoryReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{StateLoader: NewStaticStateLoader(data.MustStates())}
	repo := NewStateRepository(loader, time.Minute)
	now := time.Now()
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetStates(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetStates(context.Background())

	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.calls)
	}
}

func TestStateRepositoryDoesNotCacheErrors(t *testing.T) {
	loader := &failingLoader{err: errors.New("db down")}
	repo := NewStateRepository(loader, time.Minute)

	if _, err := repo.GetStates(context.Background()); err == nil {
		t.Fatalf("expected loader error")
	}
	loader.err = nil
	if _, err := repo.GetStates(context.Background()); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
}

type countingLoader struct {
	StateLoader
	calls int
}

func (l *countingLoader) LoadStates(ctx context.Context) ([]domain.StateRecord, error) {
	l.calls++
	return l.StateLoader.LoadStates(ctx)
}

type failingLoader struct {
	err error
}

func (l *failingLoader) LoadStates(_ context.Context) ([]domain.StateRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	return data.States()
}
