package processing

import (
	"cmp"
	"slices"

	"github.com/spacesedan/sentilens/internal/models"
)

// CountFrequencies tallies tokens and orders them by count, highest first.
// Equal counts keep the order in which the words first appeared.
func CountFrequencies(tokens []string) models.WordFrequencies {
	index := make(map[string]int, len(tokens))
	freqs := make(models.WordFrequencies, 0, len(tokens))

	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			freqs[i].Count++
			continue
		}
		index[tok] = len(freqs)
		freqs = append(freqs, models.WordCount{Word: tok, Count: 1})
	}

	slices.SortStableFunc(freqs, func(a, b models.WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return freqs
}
