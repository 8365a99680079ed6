package team

import (
	"strings"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/scoring"
)

const (
	extensiveExperienceMin = 3
	diverseSkillsMin       = 5
)

// Justifications derives the selection rationale bullets for one
// candidate. The bullets mirror the score bonuses, so a high-scoring
// candidate always has something to show for it.
func Justifications(c *candidate.Candidate, rules scoring.Rules) []string {
	var reasons []string

	level := strings.ToLower(c.HighestEducation())
	if strings.Contains(level, "phd") || strings.Contains(level, "doctorate") || strings.Contains(level, "master") {
		reasons = append(reasons, "Advanced degree holder")
	}

	if c.HasTopTierDegree() {
		reasons = append(reasons, "Top-tier university graduate")
	}

	if len(c.WorkExperiences) >= extensiveExperienceMin {
		reasons = append(reasons, "Extensive work experience")
	}

	for _, exp := range c.WorkExperiences {
		if scoring.ContainsAny(exp.RoleName, rules.SeniorTitles) {
			reasons = append(reasons, "Leadership experience")
			break
		}
	}

	if len(c.Skills) >= diverseSkillsMin {
		reasons = append(reasons, "Diverse skill set")
	}

	return reasons
}
