package scoring

import "sort"

// TopN returns a fresh slice of at most n candidates ordered by total
// score descending. The sort is stable: candidates with equal scores
// keep their input order. n <= 0 means no limit.
func TopN(scored []ScoredCandidate, n int) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// FilterMinScore returns the candidates whose total score is at least
// the given threshold, preserving order.
func FilterMinScore(scored []ScoredCandidate, minScore int) []ScoredCandidate {
	if minScore <= 0 {
		return scored
	}

	filtered := make([]ScoredCandidate, 0, len(scored))
	for _, s := range scored {
		if s.TotalScore >= minScore {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
