package http

import (
	"math/rand"
	"time"

	"abbrev-quiz/internal/app"
	"abbrev-quiz/internal/data"
	"abbrev-quiz/internal/infra/memory"
)

func newTestService() *app.GameService {
	store := memory.NewSessionStore(time.Hour)
	states := memory.NewStateRepository(memory.NewStaticStateLoader(data.MustStates()), time.Minute)
	return app.NewGameService(store, states, rand.New(rand.NewSource(1)))
}

// abbrByState maps state names to abbreviations for answering rounds.
func abbrByState() map[string]string {
	out := make(map[string]string)
	for _, rec := range data.MustStates() {
		out[rec.State] = rec.Abbr
	}
	return out
}
