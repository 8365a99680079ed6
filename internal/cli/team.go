package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/config"
	"github.com/hireteam/hireboard/internal/output"
	"github.com/hireteam/hireboard/internal/roster"
	"github.com/hireteam/hireboard/internal/scoring"
	"github.com/hireteam/hireboard/internal/team"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Build and analyze the hiring team",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a candidate to the team",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamAdd,
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a candidate from the team",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamRemove,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected team",
	RunE:  runTeamList,
}

var teamClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove everyone from the team",
	RunE:  runTeamClear,
}

var teamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show diversity and budget metrics for the team",
	RunE:  runTeamAnalyze,
}

var teamSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest candidates for the remaining slots",
	Long: `Greedily pick the highest-scoring unselected candidates to fill
the remaining team slots. Pass --apply to add them to the roster.`,
	RunE: runTeamSuggest,
}

var suggestApply bool

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamRemoveCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamClearCmd)
	teamCmd.AddCommand(teamAnalyzeCmd)
	teamCmd.AddCommand(teamSuggestCmd)

	teamSuggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "Add the suggested candidates to the roster")
}

func runTeamAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)

	// Resolve against the pool so the roster only ever holds real
	// candidate names.
	c, err := findCandidate(pool, name)
	if err != nil {
		return err
	}

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	member, err := db.AddMember(ctx, c.Name, cfg.Team.Size)
	if err == roster.ErrFull {
		return fmt.Errorf("team is full (%d members); remove someone first", cfg.Team.Size)
	}
	if err != nil {
		return err
	}

	log.Debug("added team member", zap.String("name", member.Name))

	count, err := db.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s to the team (%d/%d positions filled)\n", member.Name, count, cfg.Team.Size)
	return nil
}

func runTeamRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.RemoveMember(ctx, name); err != nil {
		return err
	}

	fmt.Printf("Removed %s from the team\n", name)
	return nil
}

func runTeamList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	members, err := db.ListMembers(ctx)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, members)
}

func runTeamClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Clear(ctx); err != nil {
		return err
	}

	fmt.Println("Cleared the team roster")
	return nil
}

func runTeamAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	members, err := db.ListMembers(ctx)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(scoring.RulesFromConfig(cfg.Scoring))
	analysis := team.NewAnalysis(pool, roster.Names(members), scorer)

	return output.Output(outputFmt, analysis)
}

func runTeamSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)

	db, err := roster.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	members, err := db.ListMembers(ctx)
	if err != nil {
		return err
	}

	slots := cfg.Team.Size - len(members)
	if slots <= 0 {
		fmt.Printf("Team is already full (%d/%d)\n", len(members), cfg.Team.Size)
		return nil
	}

	scorer := scoring.NewScorer(scoring.RulesFromConfig(cfg.Scoring))
	ranked := scoring.TopN(scorer.ScoreAll(pool), 0)
	picks := team.Suggest(ranked, roster.Names(members), slots)

	if len(picks) == 0 {
		fmt.Println("No candidates available to suggest.")
		return nil
	}

	if !suggestApply {
		fmt.Printf("Suggested for the remaining %d slot(s):\n", slots)
		for _, name := range picks {
			fmt.Printf("  - %s\n", name)
		}
		fmt.Println()
		fmt.Println("Run 'hireboard team suggest --apply' to add them.")
		return nil
	}

	if err := db.AddMembers(ctx, picks, cfg.Team.Size); err != nil {
		return err
	}

	log.Debug("applied team suggestion", zap.Int("added", len(picks)))
	fmt.Printf("Added %d candidate(s) to the team\n", len(picks))
	return nil
}
