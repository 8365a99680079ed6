package team

import (
	"sort"

	"github.com/hireteam/hireboard/internal/candidate"
)

// DiversityMetrics summarizes how varied a selected team is across
// location, skills, and education level. The counts are cardinalities
// of the supporting sets; the sets themselves are returned sorted so
// output is deterministic.
type DiversityMetrics struct {
	GeographicDiversity int      `json:"geographic_diversity"`
	SkillDiversity      int      `json:"skill_diversity"`
	EducationDiversity  int      `json:"education_diversity"`
	Locations           []string `json:"locations"`
	UniqueSkills        []string `json:"unique_skills"`
	EducationLevels     []string `json:"education_levels"`
}

// Analyze computes diversity metrics for the subset of candidates
// whose names appear in selectedNames. Names that match no candidate
// are silently ignored; an empty selection yields zero counts and
// empty sets.
func Analyze(all []candidate.Candidate, selectedNames []string) DiversityMetrics {
	locations := make(map[string]struct{})
	skills := make(map[string]struct{})
	levels := make(map[string]struct{})

	for _, c := range SelectByName(all, selectedNames) {
		locations[c.Location] = struct{}{}
		for _, s := range c.Skills {
			skills[s] = struct{}{}
		}
		levels[c.EducationOrUnknown()] = struct{}{}
	}

	return DiversityMetrics{
		GeographicDiversity: len(locations),
		SkillDiversity:      len(skills),
		EducationDiversity:  len(levels),
		Locations:           sortedKeys(locations),
		UniqueSkills:        sortedKeys(skills),
		EducationLevels:     sortedKeys(levels),
	}
}

// SelectByName filters candidates down to those whose name is in the
// given list. Membership is exact; the result preserves pool order.
func SelectByName(all []candidate.Candidate, names []string) []candidate.Candidate {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	selected := make([]candidate.Candidate, 0, len(names))
	for _, c := range all {
		if _, ok := wanted[c.Name]; ok {
			selected = append(selected, c)
		}
	}
	return selected
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
