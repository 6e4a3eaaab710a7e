package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"abbrev-quiz/internal/domain"
)

// ValidateStates checks that a reference table can back a game: the right
// number of rows, a name on every row and unique two-letter abbreviations.
func ValidateStates(records []domain.StateRecord) error {
	if len(records) != domain.RoundsPerGame {
		return fmt.Errorf("%w: want %d records, got %d", domain.ErrInvalidReferenceData, domain.RoundsPerGame, len(records))
	}
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.State) == "" {
			return fmt.Errorf("%w: record %d has no state name", domain.ErrInvalidReferenceData, i)
		}
		if utf8.RuneCountInString(rec.Abbr) != 2 || strings.ToUpper(rec.Abbr) != rec.Abbr {
			return fmt.Errorf("%w: record %d (%s) has abbreviation %q", domain.ErrInvalidReferenceData, i, rec.State, rec.Abbr)
		}
		if _, dup := seen[rec.Abbr]; dup {
			return fmt.Errorf("%w: duplicate abbreviation %q", domain.ErrInvalidReferenceData, rec.Abbr)
		}
		seen[rec.Abbr] = struct{}{}
	}
	return nil
}
