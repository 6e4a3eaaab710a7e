package data

import (
	"context"
	"testing"

	"abbrev-quiz/internal/game"
)

func TestEmbeddedStatesAreValid(t *testing.T) {
	records, err := EmbeddedLoader{}.LoadStates(context.Background())
	if err != nil {
		t.Fatalf("load states: %v", err)
	}
	if err := game.ValidateStates(records); err != nil {
		t.Fatalf("embedded table invalid: %v", err)
	}
	if records[0].State != "Alabama" || records[0].Abbr != "AL" {
		t.Fatalf("expected Alabama first, got %+v", records[0])
	}
	if last := records[len(records)-1]; last.Abbr != "WY" {
		t.Fatalf("expected Wyoming last, got %+v", last)
	}
}
