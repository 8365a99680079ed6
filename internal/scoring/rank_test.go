package scoring

import (
	"testing"
)

func TestTopN(t *testing.T) {
	scored := []ScoredCandidate{
		{Name: "first-ninety", TotalScore: 90},
		{Name: "seventy", TotalScore: 70},
		{Name: "second-ninety", TotalScore: 90},
		{Name: "fifty", TotalScore: 50},
	}

	top := TopN(scored, 3)

	if len(top) != 3 {
		t.Fatalf("expected 3 results, got %d", len(top))
	}

	// Equal scores keep their input order.
	if top[0].Name != "first-ninety" || top[1].Name != "second-ninety" {
		t.Errorf("tie broken out of input order: %s, %s", top[0].Name, top[1].Name)
	}
	if top[2].Name != "seventy" {
		t.Errorf("expected seventy third, got %s", top[2].Name)
	}
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	scored := []ScoredCandidate{
		{Name: "low", TotalScore: 10},
		{Name: "high", TotalScore: 90},
	}

	TopN(scored, 1)

	if scored[0].Name != "low" {
		t.Errorf("input slice was reordered: %s first", scored[0].Name)
	}
}

func TestTopNBounds(t *testing.T) {
	scored := []ScoredCandidate{
		{Name: "a", TotalScore: 30},
		{Name: "b", TotalScore: 20},
	}

	if got := TopN(scored, 10); len(got) != 2 {
		t.Errorf("n beyond length: expected 2, got %d", len(got))
	}
	if got := TopN(scored, 0); len(got) != 2 {
		t.Errorf("n of 0 returns all: expected 2, got %d", len(got))
	}
	if got := TopN(nil, 5); len(got) != 0 {
		t.Errorf("nil input: expected empty, got %d", len(got))
	}
}

func TestFilterMinScore(t *testing.T) {
	scored := []ScoredCandidate{
		{Name: "a", TotalScore: 80},
		{Name: "b", TotalScore: 50},
		{Name: "c", TotalScore: 79},
	}

	kept := FilterMinScore(scored, 80)
	if len(kept) != 1 || kept[0].Name != "a" {
		t.Errorf("expected only a at threshold 80, got %+v", kept)
	}

	if got := FilterMinScore(scored, 0); len(got) != 3 {
		t.Errorf("threshold 0 keeps all: expected 3, got %d", len(got))
	}
}
