package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Team.Size != 5 {
		t.Errorf("expected Size=5, got %d", cfg.Team.Size)
	}

	if len(cfg.Scoring.SeniorTitles) != 8 {
		t.Errorf("expected 8 senior titles, got %d", len(cfg.Scoring.SeniorTitles))
	}

	if len(cfg.Scoring.HighValueSkills) != 12 {
		t.Errorf("expected 12 high-value skills, got %d", len(cfg.Scoring.HighValueSkills))
	}

	if cfg.Candidates.Path == "" {
		t.Error("expected a default candidates path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing candidates path",
			modify: func(c *Config) {
				c.Candidates.Path = ""
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "invalid team size",
			modify: func(c *Config) {
				c.Team.Size = 0
			},
			wantErr: true,
		},
		{
			name: "empty senior titles",
			modify: func(c *Config) {
				c.Scoring.SeniorTitles = nil
			},
			wantErr: true,
		},
		{
			name: "empty high value skills",
			modify: func(c *Config) {
				c.Scoring.HighValueSkills = nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	content := `
[candidates]
path = "/data/candidates.json"

[team]
size = 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Candidates.Path != "/data/candidates.json" {
		t.Errorf("expected overridden candidates path, got %s", cfg.Candidates.Path)
	}
	if cfg.Team.Size != 3 {
		t.Errorf("expected Size=3, got %d", cfg.Team.Size)
	}
	// Unset sections keep their defaults
	if len(cfg.Scoring.SeniorTitles) == 0 {
		t.Error("expected default senior titles to survive a partial config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}
