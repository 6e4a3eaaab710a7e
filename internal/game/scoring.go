package game

import "abbrev-quiz/internal/domain"

const (
	greatThreshold = 45
	goodThreshold  = 35
)

// Score counts rounds whose stored guess equals the abbreviation.
func Score(rounds []domain.RoundEntry) int {
	score := 0
	for _, r := range rounds {
		if r.Correct() {
			score++
		}
	}
	return score
}

// TierFor buckets a score out of total.
func TierFor(score, total int) domain.ResultTier {
	switch {
	case total > 0 && score == total:
		return domain.TierPerfect
	case score >= greatThreshold:
		return domain.TierGreat
	case score >= goodThreshold:
		return domain.TierGood
	default:
		return domain.TierTryAgain
	}
}
