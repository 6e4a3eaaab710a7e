package view

import (
	"math/rand"
	"testing"

	"abbrev-quiz/internal/data"
	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/game"
)

func TestBuildShowsOneScreenPerPhase(t *testing.T) {
	engine, err := game.NewEngine(data.MustStates(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	s := game.NewSession("s1")

	screen := Build(s)
	if screen.Name != "start" || screen.Setup != nil || screen.Round != nil || screen.Results != nil {
		t.Fatalf("unexpected start screen %+v", screen)
	}

	s, _ = engine.Apply(s, domain.Action{Kind: domain.ActionPlay})
	s, _ = engine.Apply(s, domain.Action{Kind: domain.ActionChooseGameMode, Value: "hard"})
	screen = Build(s)
	if screen.Setup == nil || len(screen.Setup.PlayStyles) != 2 || len(screen.Setup.GameModes) != 3 {
		t.Fatalf("unexpected setup screen %+v", screen.Setup)
	}
	if !screen.Setup.GameModes[1].Selected || screen.Setup.GameModes[1].Label != "Hard" {
		t.Fatalf("expected Hard selected, got %+v", screen.Setup.GameModes)
	}

	s, _ = engine.Apply(s, domain.Action{Kind: domain.ActionChoosePlayStyle, Value: "easy"})
	s, err = engine.Apply(s, domain.Action{Kind: domain.ActionStart})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ = engine.Apply(s, domain.Action{Kind: domain.ActionSelectOption, Value: s.Options[0]})
	screen = Build(s)
	if screen.Round == nil || screen.Round.Progress != "(1/50)" || screen.Round.FreeText {
		t.Fatalf("unexpected round screen %+v", screen.Round)
	}
	if len(screen.Round.Options) != 3 || !screen.Round.Options[0].Selected {
		t.Fatalf("expected first option selected, got %+v", screen.Round.Options)
	}
}

func TestBuildResults(t *testing.T) {
	rounds := make([]domain.RoundEntry, domain.RoundsPerGame)
	s := domain.GameSession{ID: "s1", Phase: domain.PhaseResults, Rounds: rounds, Score: 45}

	res := Build(s).Results
	if res == nil {
		t.Fatalf("expected results section")
	}
	if res.Correct != 45 || res.Incorrect != 5 || res.Tier != "great" || res.Message != "So close, great job!" {
		t.Fatalf("unexpected results %+v", res)
	}
}
