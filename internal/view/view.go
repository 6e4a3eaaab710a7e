// Package view turns a game session into the data one screen needs. The HTML
// templates, the websocket and JSON API, and the terminal client all render
// from these types.
package view

import (
	"fmt"
	"strings"

	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/game"
)

// Choice is a selectable button.
type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Setup lists the two choice groups.
type Setup struct {
	PlayStyles []Choice `json:"playStyles"`
	GameModes  []Choice `json:"gameModes"`
}

// Round is the question currently on screen.
type Round struct {
	State    string   `json:"state"`
	Number   int      `json:"number"`
	Total    int      `json:"total"`
	Progress string   `json:"progress"`
	FreeText bool     `json:"freeText"`
	Input    string   `json:"input"`
	Options  []Choice `json:"options,omitempty"`
}

// Results summarizes a finished game.
type Results struct {
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Tier      string `json:"tier"`
	Message   string `json:"message"`
}

// Screen is exactly one of the four screens; only the section matching
// Name is set.
type Screen struct {
	SessionID string   `json:"sessionId"`
	Name      string   `json:"screen"`
	Setup     *Setup   `json:"setup,omitempty"`
	Round     *Round   `json:"round,omitempty"`
	Results   *Results `json:"results,omitempty"`
}

// Build renders the session into a screen.
func Build(s domain.GameSession) Screen {
	screen := Screen{SessionID: s.ID, Name: s.Phase.String()}
	switch s.Phase {
	case domain.PhaseSetup:
		screen.Setup = buildSetup(s)
	case domain.PhasePlaying:
		screen.Round = buildRound(s)
	case domain.PhaseResults:
		screen.Results = buildResults(s)
	}
	return screen
}

func buildSetup(s domain.GameSession) *Setup {
	styles := []domain.PlayStyle{domain.PlayStyleEasy, domain.PlayStyleNormal}
	modes := []domain.GameMode{domain.GameModeEasy, domain.GameModeHard, domain.GameModeGodly}

	setup := &Setup{}
	for _, p := range styles {
		setup.PlayStyles = append(setup.PlayStyles, Choice{Value: p.String(), Label: label(p.String()), Selected: s.PlayStyle == p})
	}
	for _, m := range modes {
		setup.GameModes = append(setup.GameModes, Choice{Value: m.String(), Label: label(m.String()), Selected: s.GameMode == m})
	}
	return setup
}

func buildRound(s domain.GameSession) *Round {
	current, ok := s.CurrentRound()
	if !ok {
		return nil
	}
	round := &Round{
		State:    current.State,
		Number:   s.CurrentIndex + 1,
		Total:    len(s.Rounds),
		Progress: fmt.Sprintf("(%d/%d)", s.CurrentIndex+1, len(s.Rounds)),
		FreeText: s.PlayStyle == domain.PlayStyleNormal,
		Input:    s.Input,
	}
	for _, opt := range s.Options {
		round.Options = append(round.Options, Choice{Value: opt, Label: opt, Selected: s.Input == opt})
	}
	return round
}

func buildResults(s domain.GameSession) *Results {
	total := len(s.Rounds)
	tier := game.TierFor(s.Score, total)
	return &Results{
		Correct:   s.Score,
		Incorrect: total - s.Score,
		Tier:      tier.String(),
		Message:   tier.Message(),
	}
}

func label(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
