package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/roster"
	"github.com/hireteam/hireboard/internal/scoring"
	"github.com/hireteam/hireboard/internal/team"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []scoring.ScoredCandidate:
		return rankedTable(w, v)
	case []roster.Member:
		return membersTable(w, v)
	case *team.Analysis:
		return analysisTable(w, v)
	case *team.Report:
		return reportTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func rankedTable(w io.Writer, scored []scoring.ScoredCandidate) error {
	if len(scored) == 0 {
		fmt.Fprintln(w, "No candidates found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"Rank", "Name", "Location", "Score", "Exp", "Edu", "Skills", "Salary", "Value"})

	for i, s := range scored {
		if err := table.Append([]string{
			fmt.Sprintf("%d", i+1),
			truncate(s.Name, 25),
			truncate(s.Location, 20),
			fmt.Sprintf("%d", s.TotalScore),
			fmt.Sprintf("%d", s.ExperienceScore),
			fmt.Sprintf("%d", s.EducationScore),
			fmt.Sprintf("%d", s.SkillsScore),
			formatSalary(s.SalaryExpectation),
			formatRatio(s.ValueRatio),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func membersTable(w io.Writer, members []roster.Member) error {
	if len(members) == 0 {
		fmt.Fprintln(w, "No candidates selected yet. Use 'hireboard team add <name>' to start building your team.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"#", "Name", "Added"})

	for i, m := range members {
		if err := table.Append([]string{
			fmt.Sprintf("%d", i+1),
			truncate(m.Name, 30),
			m.AddedAt.Format("Jan 02, 2006"),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func analysisTable(w io.Writer, a *team.Analysis) error {
	if len(a.Members) == 0 {
		fmt.Fprintln(w, "No candidates selected yet.")
		return nil
	}

	fmt.Fprintln(w, "Team Composition Analysis")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Team members:           %d\n", len(a.Members))
	fmt.Fprintf(w, "Geographic diversity:   %d\n", a.Diversity.GeographicDiversity)
	fmt.Fprintf(w, "Skill diversity:        %d\n", a.Diversity.SkillDiversity)
	fmt.Fprintf(w, "Education diversity:    %d\n", a.Diversity.EducationDiversity)
	fmt.Fprintf(w, "Total annual budget:    %s\n", formatSalary(a.Budget.TotalBudget))
	fmt.Fprintf(w, "Average salary:         %s\n", formatSalary(a.Budget.AverageSalary))
	fmt.Fprintf(w, "Average team score:     %.0f/100\n", a.Budget.AverageScore)

	if len(a.Diversity.Locations) > 0 {
		fmt.Fprintf(w, "Locations:              %s\n", strings.Join(a.Diversity.Locations, ", "))
	}
	if len(a.Diversity.UniqueSkills) > 0 {
		fmt.Fprintf(w, "Skills covered:         %s\n", strings.Join(a.Diversity.UniqueSkills, ", "))
	}

	return nil
}

func reportTable(w io.Writer, r *team.Report) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Hiring Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Generated:              %s\n", r.GeneratedAt.Format("Jan 02, 2006 3:04 PM"))
	fmt.Fprintf(w, "Team size:              %d\n", r.Budget.TeamSize)
	fmt.Fprintf(w, "Total annual budget:    %s\n", formatSalary(r.Budget.TotalBudget))
	fmt.Fprintf(w, "Average salary:         %s\n", formatSalary(r.Budget.AverageSalary))
	fmt.Fprintf(w, "Average team score:     %.0f/100\n", r.Budget.AverageScore)
	fmt.Fprintf(w, "Geographic diversity:   %d locations\n", r.Diversity.GeographicDiversity)
	fmt.Fprintf(w, "Skill coverage:         %d unique skills\n", r.Diversity.SkillDiversity)
	fmt.Fprintln(w)

	if len(r.Members) == 0 {
		fmt.Fprintln(w, "No team members selected.")
		return nil
	}

	for _, m := range r.Members {
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "%s (score: %d/100)\n", m.Name, m.TotalScore)
		fmt.Fprintf(w, "  Location: %s\n", orNA(m.Location))
		fmt.Fprintf(w, "  Salary:   %s\n", formatSalary(m.Salary))
		if len(m.Justifications) > 0 {
			fmt.Fprintf(w, "  Why chosen: %s\n", strings.Join(m.Justifications, ", "))
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}

// CandidateDetail prints one candidate's record with its score
// breakdown and selection rationale.
func CandidateDetail(w io.Writer, c *candidate.Candidate, s scoring.ScoredCandidate, reasons []string) error {
	fmt.Fprintf(w, "Name:        %s\n", c.Name)
	if c.Email != "" {
		fmt.Fprintf(w, "Email:       %s\n", c.Email)
	}
	fmt.Fprintf(w, "Location:    %s\n", orNA(c.Location))
	fmt.Fprintf(w, "Education:   %s\n", orNA(c.HighestEducation()))
	fmt.Fprintf(w, "Salary:      %s\n", formatSalary(s.SalaryExpectation))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Score:       %d/100 (experience %d/%d, education %d/%d, skills %d/%d)\n",
		s.TotalScore,
		s.ExperienceScore, scoring.ExperienceMax,
		s.EducationScore, scoring.EducationMax,
		s.SkillsScore, scoring.SkillsMax,
	)
	fmt.Fprintf(w, "Value ratio: %s per $100k\n", formatRatio(s.ValueRatio))

	if len(c.WorkExperiences) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Experience:")
		for _, exp := range c.WorkExperiences {
			fmt.Fprintf(w, "  - %s at %s\n", orNA(exp.RoleName), orNA(exp.Company))
		}
	}

	if len(c.Skills) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skills:      %s\n", strings.Join(c.Skills, ", "))
	}

	if len(reasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Highlights:  %s\n", strings.Join(reasons, ", "))
	}

	return nil
}

func formatSalary(amount int) string {
	if amount == 0 {
		return "N/A"
	}
	return "$" + groupDigits(amount)
}

// groupDigits inserts thousands separators ($120,000 style)
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func formatRatio(ratio float64) string {
	if ratio == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", ratio)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
