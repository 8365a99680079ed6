package team

import "github.com/hireteam/hireboard/internal/scoring"

// Suggest greedily fills the remaining team slots with the
// highest-scoring candidates not already selected. Ties keep the
// ranked input order. The pick is naive: no optimality across the
// team as a whole is attempted or claimed.
func Suggest(ranked []scoring.ScoredCandidate, selectedNames []string, slots int) []string {
	if slots <= 0 {
		return nil
	}

	taken := make(map[string]struct{}, len(selectedNames))
	for _, n := range selectedNames {
		taken[n] = struct{}{}
	}

	var picks []string
	for _, sc := range ranked {
		if _, ok := taken[sc.Name]; ok {
			continue
		}
		picks = append(picks, sc.Name)
		if len(picks) == slots {
			break
		}
	}
	return picks
}
