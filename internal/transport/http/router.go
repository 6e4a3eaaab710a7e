package http

import (
	"net/http"

	"abbrev-quiz/internal/app"
)

// NewRouter wires every handler onto one mux.
func NewRouter(service *app.GameService) http.Handler {
	pages := NewPageHandler(service)
	api := NewAPIHandler(service)
	ws := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", pages.ServePage)
	mux.HandleFunc("POST /actions", pages.ServeAction)
	mux.HandleFunc("POST /api/sessions", api.CreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", api.GetSession)
	mux.HandleFunc("POST /api/sessions/{id}/actions", api.PostAction)
	mux.HandleFunc("DELETE /api/sessions/{id}", api.DeleteSession)
	mux.HandleFunc("GET /ws", ws.ServeWS)
	return mux
}
