package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestPageFlow(t *testing.T) {
	router := NewRouter(newTestService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Play Game") {
		t.Fatalf("expected start screen, got %d %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookie {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	cookie := cookies[0]

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %d", rec.Code)
		}
		return rec
	}
	page := func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Body.String()
	}

	post(url.Values{"kind": {"play"}})
	if body := page(); !strings.Contains(body, "Playstyle?") || !strings.Contains(body, "Gamemode?") {
		t.Fatalf("expected setup screen, got %s", body)
	}

	post(url.Values{"kind": {"choose_game_mode"}, "value": {"godly"}})
	rejected := post(url.Values{"kind": {"start"}})
	if loc := rejected.Header().Get("Location"); !strings.Contains(loc, "error=") {
		t.Fatalf("expected error redirect for godly start, got %q", loc)
	}

	post(url.Values{"kind": {"choose_play_style"}, "value": {"normal"}})
	post(url.Values{"kind": {"choose_game_mode"}, "value": {"easy"}})
	post(url.Values{"kind": {"start"}})
	body := page()
	if !strings.Contains(body, "Alabama") || !strings.Contains(body, "(1/50)") || !strings.Contains(body, `id="abbr-input"`) {
		t.Fatalf("expected first round with text input, got %s", body)
	}

	post(url.Values{"kind": {"submit"}, "answer": {"al"}})
	if body := page(); !strings.Contains(body, "Alaska") || !strings.Contains(body, "(2/50)") {
		t.Fatalf("expected second round, got %s", body)
	}
}

func TestPageActionWithoutSessionRedirectsHome(t *testing.T) {
	router := NewRouter(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader("kind=play"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestFormActionsSplitsTypedAnswer(t *testing.T) {
	actions := formActions(url.Values{"kind": {"submit"}, "answer": {" ny "}})
	if len(actions) != 2 || actions[0].Kind != "input" || actions[0].Value != "ny" || actions[1].Kind != "submit" {
		t.Fatalf("unexpected actions %+v", actions)
	}

	actions = formActions(url.Values{"kind": {"select_option"}, "value": {"NY"}})
	if len(actions) != 1 || actions[0].Value != "NY" {
		t.Fatalf("unexpected actions %+v", actions)
	}
}
