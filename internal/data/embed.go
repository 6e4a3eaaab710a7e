// Package data embeds the reference table of U.S. states.
package data

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"abbrev-quiz/internal/domain"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

const statesFile = "states.json"

// States returns the embedded reference table in table order.
func States() ([]domain.StateRecord, error) {
	content, err := dataFS.ReadFile(statesFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded file %s: %w", statesFile, err)
	}
	var records []domain.StateRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse JSON from %s: %w", statesFile, err)
	}
	return records, nil
}

// MustStates panics when the embedded table cannot be read.
func MustStates() []domain.StateRecord {
	records, err := States()
	if err != nil {
		panic(err)
	}
	return records
}

// EmbeddedLoader serves the embedded table to repositories that expect a
// loader.
type EmbeddedLoader struct{}

func (EmbeddedLoader) LoadStates(_ context.Context) ([]domain.StateRecord, error) {
	return States()
}
