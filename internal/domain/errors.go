package domain

import "errors"

var (
	// ErrSessionNotFound is returned when no game session exists for an ID.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrInvalidTransition is returned when an action does not apply to the current phase.
	ErrInvalidTransition = errors.New("action not allowed in current phase")
	// ErrInvalidAction indicates an unknown action kind or choice value.
	ErrInvalidAction = errors.New("invalid action")
	// ErrGameModeUnchosen is returned when a game is started without a game mode.
	ErrGameModeUnchosen = errors.New("game mode not chosen")
	// ErrGameModeNotImplemented is returned for game modes without round content.
	ErrGameModeNotImplemented = errors.New("game mode not implemented")
	// ErrEmptyRoundSequence guards the playing screen against a game with no rounds.
	ErrEmptyRoundSequence = errors.New("round sequence is empty")
	// ErrInvalidReferenceData indicates the state table failed validation.
	ErrInvalidReferenceData = errors.New("invalid reference data")
)
