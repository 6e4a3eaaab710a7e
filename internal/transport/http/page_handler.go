package http

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"abbrev-quiz/internal/app"
	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/view"
)

const sessionCookie = "abbrev_session"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler serves the server-rendered game page. The session ID travels in
// a cookie; every button posts an action and is redirected back to the page.
type PageHandler struct {
	service *app.GameService
}

func NewPageHandler(service *app.GameService) *PageHandler {
	return &PageHandler{service: service}
}

type pageData struct {
	Screen view.Screen
	Error  string
}

// ServePage renders the screen for the caller's session, creating one when
// the cookie is missing or the session has expired.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	session, err := h.currentSession(r)
	if errors.Is(err, domain.ErrSessionNotFound) {
		session, err = h.service.Create(r.Context())
		if err == nil {
			setSessionCookie(w, session.ID)
		}
	}
	if err != nil {
		log.Printf("page session: %v", err)
		http.Error(w, userMessage(err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{Screen: view.Build(session), Error: r.URL.Query().Get("error")}
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}

// ServeAction applies the posted form action and redirects to the page.
func (h *PageHandler) ServeAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	session, err := h.currentSession(r)
	if err != nil {
		// Expired or missing sessions start over on the page.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	actions := formActions(r.PostForm)
	for _, action := range actions {
		if _, err := h.service.Dispatch(r.Context(), session.ID, action); err != nil {
			if statusFor(err) == http.StatusInternalServerError {
				log.Printf("dispatch %s: %v", action.Kind, err)
			}
			http.Redirect(w, r, "/?error="+url.QueryEscape(userMessage(err)), http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formActions turns one form post into engine actions. The free-text form
// carries the typed answer next to the submit, so it becomes input + submit.
func formActions(form url.Values) []domain.Action {
	kind := domain.ActionKind(form.Get("kind"))
	if kind == domain.ActionSubmit && form.Has("answer") {
		return []domain.Action{
			{Kind: domain.ActionInput, Value: strings.TrimSpace(form.Get("answer"))},
			{Kind: domain.ActionSubmit},
		}
	}
	return []domain.Action{{Kind: kind, Value: form.Get("value")}}
}

func (h *PageHandler) currentSession(r *http.Request) (domain.GameSession, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.GameSession{}, domain.ErrSessionNotFound
	}
	return h.service.Get(r.Context(), cookie.Value)
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}
