package team

import (
	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/scoring"
)

// BudgetSummary aggregates salary and score figures for a selected
// team.
type BudgetSummary struct {
	TeamSize      int     `json:"team_size"`
	TotalBudget   int     `json:"total_budget"`
	AverageSalary int     `json:"average_salary"`
	AverageScore  float64 `json:"average_score"`
}

// Budget computes the annual budget and average score for the subset
// of candidates whose names appear in selectedNames. An empty
// selection yields an all-zero summary.
func Budget(all []candidate.Candidate, selectedNames []string, scorer *scoring.Scorer) BudgetSummary {
	selected := SelectByName(all, selectedNames)
	if len(selected) == 0 {
		return BudgetSummary{}
	}

	total := 0
	scoreSum := 0
	for i := range selected {
		sc := scorer.Score(&selected[i])
		total += sc.SalaryExpectation
		scoreSum += sc.TotalScore
	}

	return BudgetSummary{
		TeamSize:      len(selected),
		TotalBudget:   total,
		AverageSalary: total / len(selected),
		AverageScore:  float64(scoreSum) / float64(len(selected)),
	}
}
