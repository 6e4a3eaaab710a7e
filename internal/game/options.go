package game

import "strings"

const (
	optionCount = 3
	// maxFallbackDraws bounds the random first+any-letter retries before the
	// alphabet sweep takes over.
	maxFallbackDraws = 32
)

// GenerateOptions returns three distinct multiple-choice answers for a state,
// one of which is abbr, in random order.
func GenerateOptions(state, abbr string, rng Rand) []string {
	normalized := []rune(strings.ToUpper(strings.ReplaceAll(state, " ", "")))

	options := []string{abbr}
	add := func(candidate string) {
		if len(options) < optionCount && !contains(options, candidate) {
			options = append(options, candidate)
		}
	}

	var first string
	if len(normalized) > 0 {
		first = string(normalized[0])
	}
	if len(normalized) >= 2 {
		add(first + string(normalized[1]))
		add(first + string(normalized[len(normalized)-1]))
	}
	for draws := 0; len(options) < optionCount && draws < maxFallbackDraws && len(normalized) > 0; draws++ {
		add(first + string(normalized[rng.Intn(len(normalized))]))
	}
	for c := 'A'; len(options) < optionCount && c <= 'Z'; c++ {
		add(first + string(c))
	}

	Shuffle(options, rng)
	return options
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](items []T, rng Rand) {
	for m := len(items); m > 0; {
		i := rng.Intn(m)
		m--
		items[m], items[i] = items[i], items[m]
	}
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
