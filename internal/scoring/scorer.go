package scoring

import (
	"strconv"
	"strings"

	"github.com/hireteam/hireboard/internal/candidate"
)

// ScoredCandidate is the immutable result of scoring one candidate.
type ScoredCandidate struct {
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	TotalScore        int     `json:"total_score"`
	ExperienceScore   int     `json:"experience_score"`
	EducationScore    int     `json:"education_score"`
	SkillsScore       int     `json:"skills_score"`
	SalaryExpectation int     `json:"salary_expectation"`
	ValueRatio        float64 `json:"value_ratio"`
}

// Scorer turns candidate records into scores. It is a pure function of
// its input: no state is carried between calls and records are never
// mutated.
type Scorer struct {
	rules Rules
}

// NewScorer creates a Scorer with the given keyword rules.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// Rules returns the keyword rules this scorer was built with.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// Score computes the component-wise and total score for one candidate.
// Missing or malformed fields contribute zero, never an error.
func (s *Scorer) Score(c *candidate.Candidate) ScoredCandidate {
	experience := s.scoreExperience(c)
	education := s.scoreEducation(c)
	skills := s.scoreSkills(c)
	total := experience + education + skills

	salary := ParseSalary(c.FullTimeSalary())

	// Score per $100k of expected salary; zero salary means zero
	// ratio rather than a division error.
	ratio := 0.0
	if salary > 0 {
		ratio = float64(total) / float64(salary) * 100000
	}

	return ScoredCandidate{
		Name:              c.Name,
		Location:          c.Location,
		TotalScore:        total,
		ExperienceScore:   experience,
		EducationScore:    education,
		SkillsScore:       skills,
		SalaryExpectation: salary,
		ValueRatio:        ratio,
	}
}

// ScoreAll scores every candidate in input order.
func (s *Scorer) ScoreAll(candidates []candidate.Candidate) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i := range candidates {
		scored[i] = s.Score(&candidates[i])
	}
	return scored
}

// scoreExperience awards 5 points per role capped at 25, +15 once for
// any senior-level title, +10 once for any top-company employer.
func (s *Scorer) scoreExperience(c *candidate.Candidate) int {
	score := min(pointsPerExperience*len(c.WorkExperiences), experienceBaseCap)

	for _, exp := range c.WorkExperiences {
		if ContainsAny(exp.RoleName, s.rules.SeniorTitles) {
			score += seniorRoleBonus
			break
		}
	}

	for _, exp := range c.WorkExperiences {
		if ContainsAny(exp.Company, s.rules.TopCompanies) {
			score += topCompanyBonus
			break
		}
	}

	return min(score, ExperienceMax)
}

// scoreEducation awards the highest matching tier only (phd beats
// master beats bachelor), plus +10 for the first top-tier degree.
func (s *Scorer) scoreEducation(c *candidate.Candidate) int {
	level := strings.ToLower(c.HighestEducation())

	score := 0
	switch {
	case strings.Contains(level, "phd") || strings.Contains(level, "doctorate"):
		score = phdPoints
	case strings.Contains(level, "master"):
		score = masterPoints
	case strings.Contains(level, "bachelor"):
		score = bachelorPoints
	}

	if c.HasTopTierDegree() {
		score += topTierBonus
	}

	return min(score, EducationMax)
}

// scoreSkills awards 2 points per listed skill capped at 20, plus +2
// for each high-value keyword found in the joined skill string. A
// single skill entry can match several keywords.
func (s *Scorer) scoreSkills(c *candidate.Candidate) int {
	score := min(pointsPerSkill*len(c.Skills), skillsBaseCap)

	joined := strings.ToLower(strings.Join(c.Skills, " "))
	for _, kw := range s.rules.HighValueSkills {
		if strings.Contains(joined, kw) {
			score += highValueSkillPts
		}
	}

	return min(score, SkillsMax)
}

// ParseSalary extracts the digits from a currency-formatted string
// ("$120,000" -> 120000). Anything without digits parses as 0.
func ParseSalary(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
