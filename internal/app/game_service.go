package app

import (
	"context"
	"sync"

	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/game"
	"abbrev-quiz/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SessionRepository abstracts where game session snapshots live (in-memory, Redis, etc).
type SessionRepository interface {
	Save(ctx context.Context, session domain.GameSession) error
	Get(ctx context.Context, sessionID string) (domain.GameSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// StateRepository serves the reference table (from cache/backing store).
type StateRepository interface {
	GetStates(ctx context.Context) ([]domain.StateRecord, error)
}

// GameService contains the quiz use cases shared by every transport.
type GameService struct {
	sessions SessionRepository
	states   StateRepository
	rng      game.Rand
	newID    func() string
	tracer   trace.Tracer
	locks    *sessionLocks
	hub      *hub
}

func NewGameService(sessions SessionRepository, states StateRepository, rng game.Rand) *GameService {
	return &GameService{
		sessions: sessions,
		states:   states,
		rng:      rng,
		newID:    uuid.NewString,
		tracer:   telemetry.Tracer("app"),
		locks:    newSessionLocks(),
		hub:      newHub(),
	}
}

// Create starts a session on the start screen.
func (s *GameService) Create(ctx context.Context) (domain.GameSession, error) {
	// Fail early when the reference table is unavailable.
	if _, err := s.engine(ctx); err != nil {
		return domain.GameSession{}, err
	}

	session := game.NewSession(s.newID())
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.GameSession{}, err
	}
	return session, nil
}

// Get returns the stored session.
func (s *GameService) Get(ctx context.Context, sessionID string) (domain.GameSession, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Dispatch applies one player action. Actions on the same session are
// serialized so each answer is recorded before the next one is read.
func (s *GameService) Dispatch(ctx context.Context, sessionID string, action domain.Action) (domain.GameSession, error) {
	ctx, span := s.tracer.Start(ctx, "game.dispatch", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("action.kind", string(action.Kind)),
	))
	defer span.End()

	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fail(span, domain.GameSession{}, err)
	}
	span.SetAttributes(attribute.String("phase.before", session.Phase.String()))

	engine, err := s.engine(ctx)
	if err != nil {
		return fail(span, session, err)
	}

	next, err := engine.Apply(session, action)
	if err != nil {
		return fail(span, session, err)
	}
	if err := s.sessions.Save(ctx, next); err != nil {
		return fail(span, session, err)
	}

	span.SetAttributes(
		attribute.String("phase.after", next.Phase.String()),
		attribute.Int("round.index", next.CurrentIndex),
	)
	if next.Phase == domain.PhaseResults {
		span.SetAttributes(attribute.Int("game.score", next.Score))
	}
	s.hub.publish(next)
	return next, nil
}

// Subscribe returns a channel that receives the session after every change.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.GameSession, func(), error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.hub.subscribe(session)
	return ch, cancel, nil
}

// End drops a session.
func (s *GameService) End(ctx context.Context, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.locks.forget(sessionID)
	return nil
}

func (s *GameService) engine(ctx context.Context) (*game.Engine, error) {
	states, err := s.states.GetStates(ctx)
	if err != nil {
		return nil, err
	}
	return game.NewEngine(states, s.rng)
}

func fail(span trace.Span, session domain.GameSession, err error) (domain.GameSession, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return session, err
}

// sessionLocks hands out one mutex per session ID.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (l *sessionLocks) forget(id string) {
	l.mu.Lock()
	delete(l.locks, id)
	l.mu.Unlock()
}
