// Package game is the UI-free quiz engine: round generation, option
// generation, submission and scoring, driven through a reducer over
// domain.GameSession values.
package game

import (
	"strings"

	"abbrev-quiz/internal/domain"
)

// maxInputRunes caps free-text answers the way the answer field does.
const maxInputRunes = 2

// Engine applies actions to sessions against a fixed reference table.
type Engine struct {
	states []domain.StateRecord
	rng    Rand
}

// NewEngine validates the reference table and returns an engine using rng.
func NewEngine(states []domain.StateRecord, rng Rand) (*Engine, error) {
	if err := ValidateStates(states); err != nil {
		return nil, err
	}
	owned := make([]domain.StateRecord, len(states))
	copy(owned, states)
	return &Engine{states: owned, rng: rng}, nil
}

// States returns a copy of the reference table.
func (e *Engine) States() []domain.StateRecord {
	out := make([]domain.StateRecord, len(e.states))
	copy(out, e.states)
	return out
}

// NewSession returns the pristine session shown on the start screen.
func NewSession(id string) domain.GameSession {
	return domain.GameSession{ID: id, Phase: domain.PhaseStart}
}

// Apply returns the session that results from action. The input session is
// never modified; on error it is returned unchanged.
func (e *Engine) Apply(s domain.GameSession, action domain.Action) (domain.GameSession, error) {
	switch action.Kind {
	case domain.ActionPlay:
		if s.Phase != domain.PhaseStart {
			return s, domain.ErrInvalidTransition
		}
		s.Phase = domain.PhaseSetup
		return s, nil

	case domain.ActionChoosePlayStyle:
		if s.Phase != domain.PhaseSetup {
			return s, domain.ErrInvalidTransition
		}
		style, err := domain.ParsePlayStyle(action.Value)
		if err != nil {
			return s, err
		}
		s.PlayStyle = style
		return s, nil

	case domain.ActionChooseGameMode:
		if s.Phase != domain.PhaseSetup {
			return s, domain.ErrInvalidTransition
		}
		mode, err := domain.ParseGameMode(action.Value)
		if err != nil {
			return s, err
		}
		s.GameMode = mode
		return s, nil

	case domain.ActionStart:
		if s.Phase != domain.PhaseSetup {
			return s, domain.ErrInvalidTransition
		}
		return e.start(s)

	case domain.ActionInput:
		if s.Phase != domain.PhasePlaying {
			return s, domain.ErrInvalidTransition
		}
		if s.PlayStyle != domain.PlayStyleNormal {
			return s, domain.ErrInvalidAction
		}
		s.Input = normalizeInput(action.Value)
		return s, nil

	case domain.ActionSelectOption:
		if s.Phase != domain.PhasePlaying {
			return s, domain.ErrInvalidTransition
		}
		if s.PlayStyle != domain.PlayStyleEasy || !contains(s.Options, action.Value) {
			return s, domain.ErrInvalidAction
		}
		s.Input = action.Value
		return s, nil

	case domain.ActionSubmit:
		if s.Phase != domain.PhasePlaying {
			return s, domain.ErrInvalidTransition
		}
		return e.submit(s)

	case domain.ActionBackToStart:
		if s.Phase != domain.PhaseResults {
			return s, domain.ErrInvalidTransition
		}
		return NewSession(s.ID), nil
	}
	return s, domain.ErrInvalidAction
}

func (e *Engine) start(s domain.GameSession) (domain.GameSession, error) {
	rounds, err := BuildRounds(e.states, s.GameMode, e.rng)
	if err != nil {
		return s, err
	}
	if len(rounds) == 0 {
		return s, domain.ErrEmptyRoundSequence
	}
	s.Rounds = rounds
	s.CurrentIndex = 0
	s.Score = 0
	s.Input = ""
	s.Options = e.optionsFor(s)
	s.Phase = domain.PhasePlaying
	return s, nil
}

func (e *Engine) submit(s domain.GameSession) (domain.GameSession, error) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Rounds) {
		return s, domain.ErrEmptyRoundSequence
	}

	rounds := make([]domain.RoundEntry, len(s.Rounds))
	copy(rounds, s.Rounds)
	rounds[s.CurrentIndex].Guess = s.Input
	rounds[s.CurrentIndex].Completed = true
	s.Rounds = rounds
	s.Input = ""

	if s.CurrentIndex == len(rounds)-1 {
		s.Score = Score(rounds)
		s.Phase = domain.PhaseResults
		s.CurrentIndex = 0
		s.Options = nil
		return s, nil
	}

	s.CurrentIndex++
	s.Options = e.optionsFor(s)
	return s, nil
}

func (e *Engine) optionsFor(s domain.GameSession) []string {
	if s.PlayStyle != domain.PlayStyleEasy {
		return nil
	}
	round, ok := s.CurrentRound()
	if !ok {
		return nil
	}
	return GenerateOptions(round.State, round.Abbr, e.rng)
}

func normalizeInput(raw string) string {
	upper := []rune(strings.ToUpper(raw))
	if len(upper) > maxInputRunes {
		upper = upper[:maxInputRunes]
	}
	return string(upper)
}
