package scoring

import (
	"strings"

	"github.com/hireteam/hireboard/internal/config"
)

// Score components and their caps. The total score is the sum of the
// three components, so it never exceeds 100.
const (
	ExperienceMax = 40
	EducationMax  = 30
	SkillsMax     = 30

	// Experience: per-role base plus one-time bonuses
	pointsPerExperience = 5
	experienceBaseCap   = 25
	seniorRoleBonus     = 15
	topCompanyBonus     = 10

	// Education: only the highest matching tier applies
	phdPoints      = 25
	masterPoints   = 20
	bachelorPoints = 15
	topTierBonus   = 10

	// Skills: per-skill base plus per-keyword bonuses
	pointsPerSkill    = 2
	skillsBaseCap     = 20
	highValueSkillPts = 2
)

// Rules holds the keyword tables that feed the bonus sub-rules. All
// keywords are held lowercase; matching is substring-based and
// case-insensitive on the candidate side.
type Rules struct {
	SeniorTitles    []string
	TopCompanies    []string
	HighValueSkills []string
}

// DefaultRules returns the compiled-in keyword tables.
func DefaultRules() Rules {
	return RulesFromConfig(config.Default().Scoring)
}

// RulesFromConfig builds Rules from a scoring config section,
// normalizing all keywords to lowercase.
func RulesFromConfig(cfg config.ScoringConfig) Rules {
	return Rules{
		SeniorTitles:    lowerAll(cfg.SeniorTitles),
		TopCompanies:    lowerAll(cfg.TopCompanies),
		HighValueSkills: lowerAll(cfg.HighValueSkills),
	}
}

// ContainsAny reports whether the lowercased text contains any of the
// given keywords as a substring.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
