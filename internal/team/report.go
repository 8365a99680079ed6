package team

import (
	"time"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/scoring"
)

// MemberReport is one team member's entry in the hiring report.
type MemberReport struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	TotalScore     int      `json:"total_score"`
	Salary         int      `json:"salary_expectation"`
	Justifications []string `json:"justifications"`
}

// Report is the final hiring report for a selected team: per-member
// rationale plus the budget and diversity summaries.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Members     []MemberReport   `json:"members"`
	Budget      BudgetSummary    `json:"budget"`
	Diversity   DiversityMetrics `json:"diversity"`
}

// BuildReport assembles the hiring report for the selected names.
// Unknown names are ignored, and an empty selection produces a report
// with no members and zeroed summaries.
func BuildReport(all []candidate.Candidate, selectedNames []string, scorer *scoring.Scorer) *Report {
	selected := SelectByName(all, selectedNames)

	members := make([]MemberReport, 0, len(selected))
	for i := range selected {
		c := &selected[i]
		sc := scorer.Score(c)
		members = append(members, MemberReport{
			Name:           c.Name,
			Location:       c.Location,
			TotalScore:     sc.TotalScore,
			Salary:         sc.SalaryExpectation,
			Justifications: Justifications(c, scorer.Rules()),
		})
	}

	return &Report{
		GeneratedAt: time.Now(),
		Members:     members,
		Budget:      Budget(all, selectedNames, scorer),
		Diversity:   Analyze(all, selectedNames),
	}
}

// Analysis bundles everything `team analyze` displays.
type Analysis struct {
	Members   []string         `json:"members"`
	Diversity DiversityMetrics `json:"diversity"`
	Budget    BudgetSummary    `json:"budget"`
}

// NewAnalysis computes diversity and budget metrics for the selection.
func NewAnalysis(all []candidate.Candidate, selectedNames []string, scorer *scoring.Scorer) *Analysis {
	return &Analysis{
		Members:   selectedNames,
		Diversity: Analyze(all, selectedNames),
		Budget:    Budget(all, selectedNames, scorer),
	}
}
