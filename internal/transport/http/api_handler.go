package http

import (
	"encoding/json"
	"log"
	"net/http"

	"abbrev-quiz/internal/app"
	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/view"
)

// APIHandler exposes sessions as JSON for scripted clients.
type APIHandler struct {
	service *app.GameService
}

func NewAPIHandler(service *app.GameService) *APIHandler {
	return &APIHandler{service: service}
}

// CreateSession handles POST /api/sessions.
func (h *APIHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view.Build(session))
}

// GetSession handles GET /api/sessions/{id}.
func (h *APIHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Build(session))
}

// PostAction handles POST /api/sessions/{id}/actions.
func (h *APIHandler) PostAction(w http.ResponseWriter, r *http.Request) {
	var action domain.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid action payload"})
		return
	}
	session, err := h.service.Dispatch(r.Context(), r.PathValue("id"), action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Build(session))
}

// DeleteSession handles DELETE /api/sessions/{id}.
func (h *APIHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.End(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorPayload struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("api error: %v", err)
	}
	writeJSON(w, status, errorPayload{Message: userMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
