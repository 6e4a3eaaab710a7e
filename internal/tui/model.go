// Package tui is a terminal front end for the quiz built on bubbletea. It
// holds a game session, feeds key presses to the engine as actions, and
// renders the same screens the browser shows.
package tui

import (
	"fmt"
	"strings"

	"abbrev-quiz/internal/domain"
	"abbrev-quiz/internal/game"
	"abbrev-quiz/internal/view"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0d1117")).Background(lipgloss.Color("#58a6ff")).Padding(0, 1)
	styleButton   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de")).Padding(0, 1)
	styleCorrect  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleWrong    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72"))
)

// Model is the bubbletea model for one local player.
type Model struct {
	engine  *game.Engine
	session domain.GameSession
	input   textinput.Model
	// setupRow is 0 for the play style row and 1 for the game mode row.
	setupRow int
	err      error
}

// New returns a model on the start screen.
func New(engine *game.Engine) *Model {
	ti := textinput.New()
	ti.CharLimit = 2
	ti.Placeholder = "??"
	ti.Width = 3
	return &Model{
		engine:  engine,
		session: game.NewSession("local"),
		input:   ti,
	}
}

// Session returns the current session value.
func (m *Model) Session() domain.GameSession {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}

	switch m.session.Phase {
	case domain.PhaseStart:
		if key.Type == tea.KeyEnter {
			m.apply(domain.Action{Kind: domain.ActionPlay})
		} else if key.String() == "q" {
			return m, tea.Quit
		}
	case domain.PhaseSetup:
		m.updateSetup(key)
	case domain.PhasePlaying:
		return m, m.updatePlaying(key)
	case domain.PhaseResults:
		if key.Type == tea.KeyEnter {
			m.apply(domain.Action{Kind: domain.ActionBackToStart})
			m.setupRow = 0
		} else if key.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updateSetup(key tea.KeyMsg) {
	switch key.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyTab:
		m.setupRow = 1 - m.setupRow
	case tea.KeyLeft, tea.KeyRight:
		m.cycleSetupChoice(key.Type == tea.KeyRight)
	case tea.KeyEnter:
		m.apply(domain.Action{Kind: domain.ActionStart})
		if m.session.Phase == domain.PhasePlaying {
			m.input.Reset()
			m.input.Focus()
		}
	}
}

func (m *Model) cycleSetupChoice(forward bool) {
	setup := view.Build(m.session).Setup
	choices := setup.PlayStyles
	kind := domain.ActionChoosePlayStyle
	if m.setupRow == 1 {
		choices = setup.GameModes
		kind = domain.ActionChooseGameMode
	}

	next := 0
	if !forward {
		next = len(choices) - 1
	}
	for i, c := range choices {
		if c.Selected {
			if forward {
				next = (i + 1) % len(choices)
			} else {
				next = (i - 1 + len(choices)) % len(choices)
			}
		}
	}
	m.apply(domain.Action{Kind: kind, Value: choices[next].Value})
}

func (m *Model) updatePlaying(key tea.KeyMsg) tea.Cmd {
	if key.Type == tea.KeyEnter {
		m.apply(domain.Action{Kind: domain.ActionSubmit})
		m.input.Reset()
		return nil
	}

	switch m.session.PlayStyle {
	case domain.PlayStyleEasy:
		switch key.String() {
		case "1", "2", "3":
			idx := int(key.String()[0] - '1')
			if idx < len(m.session.Options) {
				m.apply(domain.Action{Kind: domain.ActionSelectOption, Value: m.session.Options[idx]})
			}
		}
		return nil
	case domain.PlayStyleNormal:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		m.apply(domain.Action{Kind: domain.ActionInput, Value: m.input.Value()})
		m.input.SetValue(m.session.Input)
		m.input.CursorEnd()
		return cmd
	}
	return nil
}

func (m *Model) apply(action domain.Action) {
	next, err := m.engine.Apply(m.session, action)
	m.err = err
	if err == nil {
		m.session = next
	}
}

func (m *Model) View() string {
	screen := view.Build(m.session)
	var b strings.Builder

	switch screen.Name {
	case "start":
		b.WriteString(styleTitle.Render("State Abbreviations") + "\n\n")
		b.WriteString(styleSelected.Render("Play Game") + "\n\n")
		b.WriteString(styleDim.Render("enter: play  q: quit"))
	case "setup":
		b.WriteString(renderChoiceRow("Playstyle?", screen.Setup.PlayStyles, m.setupRow == 0))
		b.WriteString(renderChoiceRow("Gamemode?", screen.Setup.GameModes, m.setupRow == 1))
		b.WriteString(styleDim.Render("up/down: row  left/right: choose  enter: start"))
	case "playing":
		if r := screen.Round; r != nil {
			b.WriteString(styleTitle.Render(r.State) + " " + styleDim.Render(r.Progress) + "\n\n")
			switch {
			case len(r.Options) > 0:
				for i, opt := range r.Options {
					b.WriteString(renderButton(fmt.Sprintf("%d %s", i+1, opt.Label), opt.Selected))
				}
				b.WriteString("\n\n" + styleDim.Render("1-3: choose  enter: next"))
			case r.FreeText:
				b.WriteString(m.input.View() + "\n\n" + styleDim.Render("type the abbreviation  enter: next"))
			default:
				b.WriteString(styleDim.Render("enter: next"))
			}
		}
	case "results":
		if r := screen.Results; r != nil {
			b.WriteString(styleTitle.Render("Results") + "\n\n")
			b.WriteString(styleCorrect.Render(fmt.Sprintf("%d", r.Correct)) + "   " + styleWrong.Render(fmt.Sprintf("%d", r.Incorrect)) + "\n\n")
			b.WriteString(r.Message + "\n\n")
			b.WriteString(styleDim.Render("enter: back to start  q: quit"))
		}
	}

	if m.err != nil {
		b.WriteString("\n\n" + styleError.Render(m.err.Error()))
	}
	return b.String() + "\n"
}

func renderChoiceRow(title string, choices []view.Choice, active bool) string {
	marker := "  "
	if active {
		marker = "> "
	}
	var row strings.Builder
	for _, c := range choices {
		row.WriteString(renderButton(c.Label, c.Selected))
	}
	return marker + title + "\n  " + row.String() + "\n\n"
}

func renderButton(label string, selected bool) string {
	if selected {
		return styleSelected.Render(label)
	}
	return styleButton.Render(label)
}
