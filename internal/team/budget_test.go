package team

import (
	"testing"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/scoring"
)

func TestBudget(t *testing.T) {
	pool := []candidate.Candidate{
		{
			Name:              "Alice",
			SalaryExpectation: map[string]string{"full-time": "$100,000"},
			Skills:            []string{"Python"},
		},
		{
			Name:              "Bob",
			SalaryExpectation: map[string]string{"full-time": "$80,000"},
			Skills:            []string{"React"},
		},
	}

	scorer := scoring.NewScorer(scoring.DefaultRules())
	b := Budget(pool, []string{"Alice", "Bob"}, scorer)

	if b.TeamSize != 2 {
		t.Errorf("expected team size 2, got %d", b.TeamSize)
	}
	if b.TotalBudget != 180000 {
		t.Errorf("expected total budget 180000, got %d", b.TotalBudget)
	}
	if b.AverageSalary != 90000 {
		t.Errorf("expected average salary 90000, got %d", b.AverageSalary)
	}
	// Alice scores 4 (python keyword), Bob 4 (react keyword).
	if b.AverageScore != 4 {
		t.Errorf("expected average score 4, got %f", b.AverageScore)
	}
}

func TestBudgetEmptySelection(t *testing.T) {
	scorer := scoring.NewScorer(scoring.DefaultRules())

	b := Budget(nil, []string{"Nobody"}, scorer)
	if b != (BudgetSummary{}) {
		t.Errorf("expected zero summary, got %+v", b)
	}
}
