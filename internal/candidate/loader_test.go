package candidate

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const sampleDoc = `[
  {
    "name": "Alice Example",
    "email": "alice@example.com",
    "location": "New York",
    "annual_salary_expectation": {"full-time": "$95,000"},
    "work_experiences": [
      {"company": "Initech", "roleName": "Senior Engineer"}
    ],
    "education": {
      "highest_level": "Master's Degree",
      "degrees": [
        {"subject": "Computer Science", "school": "MIT", "isTop50": true}
      ]
    },
    "skills": ["Python", "SQL"]
  },
  {
    "name": "Bob Example",
    "location": "Remote"
  }
]`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	candidates, err := Load(writeDoc(t, sampleDoc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}

	alice := candidates[0]
	if alice.Name != "Alice Example" {
		t.Errorf("expected name 'Alice Example', got %q", alice.Name)
	}
	if alice.FullTimeSalary() != "$95,000" {
		t.Errorf("expected salary '$95,000', got %q", alice.FullTimeSalary())
	}
	if len(alice.WorkExperiences) != 1 || alice.WorkExperiences[0].RoleName != "Senior Engineer" {
		t.Errorf("unexpected work experiences: %+v", alice.WorkExperiences)
	}
	if !alice.HasTopTierDegree() {
		t.Error("expected a top-tier degree")
	}

	// Sparse records parse with zero values, not errors.
	bob := candidates[1]
	if bob.FullTimeSalary() != "" {
		t.Errorf("expected empty salary, got %q", bob.FullTimeSalary())
	}
	if bob.EducationOrUnknown() != "Unknown" {
		t.Errorf("expected 'Unknown' education, got %q", bob.EducationOrUnknown())
	}
	if bob.HasTopTierDegree() {
		t.Error("expected no top-tier degree")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeDoc(t, `{"not": "an array"}`)); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestLoadOrEmpty(t *testing.T) {
	log := zap.NewNop()

	candidates := LoadOrEmpty(writeDoc(t, sampleDoc), log)
	if len(candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(candidates))
	}

	if got := LoadOrEmpty("/nonexistent/candidates.json", log); got != nil {
		t.Errorf("expected nil pool for missing file, got %d candidates", len(got))
	}
}
