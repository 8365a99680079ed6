package config

// Config represents the application configuration
type Config struct {
	Candidates CandidatesConfig `toml:"candidates"`
	Database   DatabaseConfig   `toml:"database"`
	Team       TeamConfig       `toml:"team"`
	Scoring    ScoringConfig    `toml:"scoring"`
}

// CandidatesConfig locates the candidate intake document
type CandidatesConfig struct {
	Path string `toml:"path"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// TeamConfig contains team building settings
type TeamConfig struct {
	Size int `toml:"size"`
}

// ScoringConfig holds the keyword tables driving candidate scoring.
// Each list maps a keyword to a fixed bonus effect in the scorer; the
// lists live here so they can be tuned without touching scoring logic.
type ScoringConfig struct {
	SeniorTitles    []string `toml:"senior_titles"`
	TopCompanies    []string `toml:"top_companies"`
	HighValueSkills []string `toml:"high_value_skills"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Candidates: CandidatesConfig{
			Path: "~/.local/share/hireboard/candidates.json",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/hireboard/hireboard.db",
		},
		Team: TeamConfig{
			Size: 5,
		},
		Scoring: ScoringConfig{
			SeniorTitles: []string{
				"senior",
				"lead",
				"principal",
				"manager",
				"director",
				"vp",
				"cto",
				"ceo",
			},
			TopCompanies: []string{
				"google",
				"microsoft",
				"meta",
				"facebook",
				"apple",
				"amazon",
				"netflix",
				"stripe",
				"uber",
				"airbnb",
			},
			HighValueSkills: []string{
				"machine learning",
				"python",
				"golang",
				"rust",
				"typescript",
				"react",
				"kubernetes",
				"docker",
				"aws",
				"gcp",
				"terraform",
				"data engineering",
			},
		},
	}
}
