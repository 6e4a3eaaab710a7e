package migrations

import (
	"context"

	"abbrev-quiz/internal/data"
	"github.com/uptrace/bun"
)

type stateRow struct {
	bun.BaseModel `bun:"table:states"`

	Position int    `bun:"position,pk"`
	Name     string `bun:"name,notnull"`
	Abbr     string `bun:"abbr,notnull"`
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			states, err := data.States()
			if err != nil {
				return err
			}
			rows := make([]stateRow, len(states))
			for i, rec := range states {
				rows[i] = stateRow{Position: i, Name: rec.State, Abbr: rec.Abbr}
			}
			_, err = db.NewInsert().
				Model(&rows).
				On("CONFLICT (position) DO UPDATE").
				Set("name = EXCLUDED.name").
				Set("abbr = EXCLUDED.abbr").
				Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.NewDelete().Model((*stateRow)(nil)).Where("TRUE").Exec(ctx)
			return err
		},
	)
}
