package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the score below which a name is not worth suggesting.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit names from known that resemble name, best first.
// Names equal after normalization always come first.
func Suggest(name string, known []string, limit int) []string {
	target := Normalize(name)

	var ranked []scored
	for _, k := range known {
		score := Similarity(target, Normalize(k))
		if score >= MinSimilarity {
			ranked = append(ranked, scored{name: k, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}

	return out
}
