package match

import "sort"

// DefaultMinScore is the similarity below which names are not suggested.
const DefaultMinScore = 0.6

// Suggest returns up to limit names from known that resemble name, best
// first. Ties keep the order of known. The exact name is never suggested.
func Suggest(name string, known []string, limit int, minScore float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var candidates []scored

	for _, k := range known {
		if k == name {
			continue
		}

		s := NormalizedLevenshteinScore(name, k)
		if s >= minScore {
			candidates = append(candidates, scored{name: k, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}

	return out
}
