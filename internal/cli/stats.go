package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hireteam/hireboard/internal/candidate"
	"github.com/hireteam/hireboard/internal/config"
	"github.com/hireteam/hireboard/internal/output"
	"github.com/hireteam/hireboard/internal/scoring"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show candidate pool statistics",
	Long: `Display aggregate statistics about the candidate pool.

Examples:
  hireboard stats           # Pool overview
  hireboard stats -o json   # Machine-readable output`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// PoolStats contains aggregate statistics over the candidate pool
type PoolStats struct {
	TotalApplicants int            `json:"total_applicants"`
	AverageSalary   int            `json:"average_salary"`
	AverageScore    float64        `json:"average_score"`
	ByEducation     map[string]int `json:"by_education"`
	TopLocations    []LocationStat `json:"top_locations"`
	ScoreBuckets    []ScoreBucket  `json:"score_distribution"`
}

// LocationStat counts applicants per location
type LocationStat struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// ScoreBucket counts applicants per score range
type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

func runStats(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool := candidate.LoadOrEmpty(cfg.Candidates.Path, log)
	scorer := scoring.NewScorer(scoring.RulesFromConfig(cfg.Scoring))

	stats := buildPoolStats(pool, scorer)

	if outputFmt == "json" {
		return output.JSON(stats)
	}

	printPoolStats(stats)
	return nil
}

func buildPoolStats(pool []candidate.Candidate, scorer *scoring.Scorer) *PoolStats {
	stats := &PoolStats{
		TotalApplicants: len(pool),
		ByEducation:     make(map[string]int),
	}

	if len(pool) == 0 {
		return stats
	}

	// Education and location breakdowns
	byLocation := make(map[string]int)
	for i := range pool {
		stats.ByEducation[pool[i].EducationOrUnknown()]++

		loc := pool[i].Location
		if loc == "" {
			loc = "Unknown"
		}
		byLocation[loc]++
	}

	// Top locations (up to 10)
	for loc, count := range byLocation {
		stats.TopLocations = append(stats.TopLocations, LocationStat{Location: loc, Count: count})
	}
	sort.Slice(stats.TopLocations, func(i, j int) bool {
		if stats.TopLocations[i].Count != stats.TopLocations[j].Count {
			return stats.TopLocations[i].Count > stats.TopLocations[j].Count
		}
		return stats.TopLocations[i].Location < stats.TopLocations[j].Location
	})
	if len(stats.TopLocations) > 10 {
		stats.TopLocations = stats.TopLocations[:10]
	}

	// Salary and score averages plus score histogram
	buckets := make([]int, 5) // 0-19, 20-39, 40-59, 60-79, 80-100
	salarySum := 0
	scoreSum := 0
	for _, sc := range scorer.ScoreAll(pool) {
		salarySum += sc.SalaryExpectation
		scoreSum += sc.TotalScore

		idx := sc.TotalScore / 20
		if idx > 4 {
			idx = 4
		}
		buckets[idx]++
	}

	stats.AverageSalary = salarySum / len(pool)
	stats.AverageScore = float64(scoreSum) / float64(len(pool))

	labels := []string{"0-19", "20-39", "40-59", "60-79", "80-100"}
	for i, count := range buckets {
		stats.ScoreBuckets = append(stats.ScoreBuckets, ScoreBucket{Range: labels[i], Count: count})
	}

	return stats
}

func printPoolStats(s *PoolStats) {
	term := NewTerminal()

	fmt.Println("Candidate Pool Statistics")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	// Summary
	fmt.Println("Summary")
	fmt.Println(strings.Repeat("-", 30))
	fmt.Printf("  Total applicants:   %d\n", s.TotalApplicants)
	if s.TotalApplicants > 0 {
		fmt.Printf("  Avg salary:         $%d\n", s.AverageSalary)
		fmt.Printf("  Avg score:          %.0f/100\n", s.AverageScore)
	}
	fmt.Println()

	if s.TotalApplicants == 0 {
		fmt.Println("No candidate data loaded. Check candidates.path in your config.")
		return
	}

	// Education distribution
	fmt.Println("Education")
	fmt.Println(strings.Repeat("-", 30))
	levels := make([]string, 0, len(s.ByEducation))
	for level := range s.ByEducation {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		if s.ByEducation[levels[i]] != s.ByEducation[levels[j]] {
			return s.ByEducation[levels[i]] > s.ByEducation[levels[j]]
		}
		return levels[i] < levels[j]
	})
	for _, level := range levels {
		fmt.Printf("  %-25s %d\n", truncate(level, 25), s.ByEducation[level])
	}
	fmt.Println()

	// Top locations
	fmt.Println("Top Locations")
	fmt.Println(strings.Repeat("-", 30))
	for _, loc := range s.TopLocations {
		fmt.Printf("  %-25s %d\n", truncate(loc.Location, 25), loc.Count)
	}
	fmt.Println()

	// Score distribution (ASCII chart)
	fmt.Println("Score Distribution")
	fmt.Println(strings.Repeat("-", 30))
	maxCount := 0
	for _, b := range s.ScoreBuckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	for _, b := range s.ScoreBuckets {
		bar := ""
		if maxCount > 0 {
			barLen := (b.Count * 20) / maxCount
			bar = strings.Repeat("█", barLen)
		}
		fmt.Printf("  %-7s %s %d\n", b.Range, term.Color(ColorGreen, bar), b.Count)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
