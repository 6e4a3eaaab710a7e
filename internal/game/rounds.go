package game

import (
	"sort"

	"abbrev-quiz/internal/domain"
)

// BuildRounds decorates every reference record with per-session fields and
// returns them sorted by display order.
func BuildRounds(records []domain.StateRecord, mode domain.GameMode, rng Rand) ([]domain.RoundEntry, error) {
	switch mode {
	case domain.GameModeEasy:
		return sortedRounds(records, identityOrder(len(records))), nil
	case domain.GameModeHard:
		return sortedRounds(records, drawOrder(len(records), rng)), nil
	case domain.GameModeGodly:
		return []domain.RoundEntry{}, domain.ErrGameModeNotImplemented
	default:
		return []domain.RoundEntry{}, domain.ErrGameModeUnchosen
	}
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// drawOrder assigns each record, in table order, a value drawn uniformly from
// the remaining pool so records and order values stay in bijection.
func drawOrder(n int, rng Rand) []int {
	pool := identityOrder(n)
	order := make([]int, n)
	for i := range order {
		pick := rng.Intn(len(pool))
		order[i] = pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	return order
}

func sortedRounds(records []domain.StateRecord, order []int) []domain.RoundEntry {
	rounds := make([]domain.RoundEntry, len(records))
	for i, rec := range records {
		rounds[i] = domain.RoundEntry{
			State: rec.State,
			Abbr:  rec.Abbr,
			Order: order[i],
		}
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Order < rounds[j].Order
	})
	return rounds
}
