package app

import (
	"sync"

	"abbrev-quiz/internal/domain"
)

// hub fans session updates out to subscribers, keyed by session ID.
type hub struct {
	mu          sync.Mutex
	subscribers map[string]map[chan domain.GameSession]struct{}
}

func newHub() *hub {
	return &hub{subscribers: make(map[string]map[chan domain.GameSession]struct{})}
}

func (h *hub) subscribe(initial domain.GameSession) (<-chan domain.GameSession, func()) {
	ch := make(chan domain.GameSession, 8)

	h.mu.Lock()
	subs, ok := h.subscribers[initial.ID]
	if !ok {
		subs = make(map[chan domain.GameSession]struct{})
		h.subscribers[initial.ID] = subs
	}
	subs[ch] = struct{}{}
	ch <- initial
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs, ok := h.subscribers[initial.ID]
		if !ok {
			return
		}
		if _, ok := subs[ch]; ok {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.subscribers, initial.ID)
		}
	}
	return ch, cancel
}

func (h *hub) publish(session domain.GameSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers[session.ID] {
		select {
		case ch <- session:
		default:
			// Slow subscriber: drop the stale update so broadcast never blocks.
			select {
			case <-ch:
			default:
			}
			ch <- session
		}
	}
}
