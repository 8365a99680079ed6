package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/config"
	"github.com/hireteam/hireboard/internal/output"
	"github.com/hireteam/hireboard/internal/scoring"
	"github.com/hireteam/hireboard/internal/team"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show candidate details",
	Long: `Show a candidate's full record with score breakdown and
selection highlights.

The name is matched case-insensitively; a unique partial match works
too.

Examples:
  hireboard show "Alex Johnson"
  hireboard show alex`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)

	c, err := findCandidate(pool, name)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(scoring.RulesFromConfig(cfg.Scoring))
	scored := scorer.Score(c)
	reasons := team.Justifications(c, scorer.Rules())

	if outputFmt == "json" {
		return output.JSON(struct {
			Candidate *candidate.Candidate    `json:"candidate"`
			Score     scoring.ScoredCandidate `json:"score"`
			Reasons   []string                `json:"highlights"`
		}{c, scored, reasons})
	}

	return output.CandidateDetail(os.Stdout, c, scored, reasons)
}

// findCandidate resolves a name to one candidate: exact
// case-insensitive match first, then unique substring match.
func findCandidate(pool []candidate.Candidate, name string) (*candidate.Candidate, error) {
	lower := strings.ToLower(name)

	for i := range pool {
		if strings.ToLower(pool[i].Name) == lower {
			return &pool[i], nil
		}
	}

	var matches []*candidate.Candidate
	for i := range pool {
		if strings.Contains(strings.ToLower(pool[i].Name), lower) {
			matches = append(matches, &pool[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("candidate not found: %s", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("ambiguous name %q matches: %s", name, strings.Join(names, ", "))
	}
}
