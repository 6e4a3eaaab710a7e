package cli

import (
	"context"

	"abbrev-quiz/internal/config"
	"abbrev-quiz/internal/game"
	"abbrev-quiz/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs the quiz in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath)
		},
	}
}

func runPlay(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	d, err := openDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	states, err := d.stateRepository(cfg).GetStates(ctx)
	if err != nil {
		return err
	}
	rng, err := newRand(cfg)
	if err != nil {
		return err
	}
	engine, err := game.NewEngine(states, rng)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(tui.New(engine), tea.WithContext(ctx)).Run()
	return err
}
