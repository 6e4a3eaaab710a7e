package http

import (
	"errors"
	"net/http"

	"abbrev-quiz/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrGameModeUnchosen),
		errors.Is(err, domain.ErrGameModeNotImplemented),
		errors.Is(err, domain.ErrEmptyRoundSequence):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userMessage hides internal failures from players.
func userMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "something went wrong, please try again"
	}
	return err.Error()
}
