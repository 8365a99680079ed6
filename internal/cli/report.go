package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/config"
	"github.com/hireteam/hireboard/internal/output"
	"github.com/hireteam/hireboard/internal/roster"
	"github.com/hireteam/hireboard/internal/scoring"
	"github.com/hireteam/hireboard/internal/team"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the final hiring report",
	Long: `Generate the hiring report for the selected team: executive
summary (budget, salaries, diversity) plus per-member selection
justifications.

Supported formats:
  - table: human-readable report
  - json:  JSON object
  - csv:   one row per team member (spreadsheet-compatible)

Examples:
  hireboard report
  hireboard report --format=json > report.json
  hireboard report --format=csv > team.csv`,
	RunE: runReport,
}

var reportFormat string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Report format (table, json, csv)")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
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
	report := team.BuildReport(pool, roster.Names(members), scorer)

	switch reportFormat {
	case "csv":
		return reportCSV(report)
	case "json":
		return output.JSON(report)
	case "table", "":
		return output.Table(report)
	default:
		return fmt.Errorf("unknown report format: %s", reportFormat)
	}
}

func reportCSV(r *team.Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"name", "location", "total_score", "salary_expectation", "justifications"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range r.Members {
		record := []string{
			m.Name,
			m.Location,
			strconv.Itoa(m.TotalScore),
			strconv.Itoa(m.Salary),
			strings.Join(m.Justifications, "; "),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
