package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketActionFlow(t *testing.T) {
	service := newTestService()
	session, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service).ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?sessionId=" + session.ID
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect the current view first.
	_, payload := readNext(conn, t, "view")
	if payload["screen"] != "start" {
		t.Fatalf("expected start screen, got %v", payload["screen"])
	}

	send(t, conn, map[string]any{"kind": "play"})
	_, payload = readNext(conn, t, "view")
	if payload["screen"] != "setup" {
		t.Fatalf("expected setup screen, got %v", payload["screen"])
	}

	send(t, conn, map[string]any{"kind": "submit"})
	_, payload = readNext(conn, t, "error")
	if payload["message"] == "" {
		t.Fatalf("expected error message, got %v", payload)
	}
}

func TestWebSocketReceivesChangesFromOtherClients(t *testing.T) {
	service := newTestService()
	session, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	server := httptest.NewServer(NewRouter(service))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?sessionId=" + session.ID
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	readNext(conn, t, "view")

	postJSON(t, server.URL+"/api/sessions/"+session.ID+"/actions", []byte(`{"kind":"play"}`), http.StatusOK, nil)

	_, payload := readNext(conn, t, "view")
	if payload["screen"] != "setup" {
		t.Fatalf("expected pushed setup screen, got %v", payload["screen"])
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	server := httptest.NewServer(NewRouter(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?sessionId=missing"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", resp)
	}
}

func send(t *testing.T, conn *websocket.Conn, action map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": "action", "payload": action}); err != nil {
		t.Fatalf("write action: %v", err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
