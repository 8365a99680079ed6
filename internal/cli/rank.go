package cli

import (
	"github.com/spf13/cobra"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/config"
	"github.com/hireteam/hireboard/internal/output"
	"github.com/hireteam/hireboard/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank the candidate pool",
	Long: `Score every candidate in the pool and show them ranked by
total score.

Examples:
  hireboard rank                # Full ranked list
  hireboard rank --top 10       # Top 10 only
  hireboard rank --min-score 70 # Candidates scoring at least 70
  hireboard rank -o json        # JSON for further processing`,
	RunE: runRank,
}

var (
	rankTop      int
	rankMinScore int
)

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Show only the top N candidates (0 = all)")
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", 0, "Hide candidates below this total score")
}

func runRank(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Load and score the pool
	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)
	scorer := scoring.NewScorer(scoring.RulesFromConfig(cfg.Scoring))

	ranked := scoring.TopN(scorer.ScoreAll(pool), rankTop)
	ranked = scoring.FilterMinScore(ranked, rankMinScore)

	return output.Output(outputFmt, ranked)
}
