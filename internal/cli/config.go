package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "hireboard")
	dataDir := filepath.Join(home, ".local", "share", "hireboard")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'hireboard config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Save your candidate data to %s/candidates.json\n", dataDir)
	fmt.Println("  2. Run 'hireboard rank' to score the pool")
	fmt.Println("  3. Run 'hireboard team add <name>' to start building your team")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'hireboard config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# hireboard configuration

[candidates]
path = "~/.local/share/hireboard/candidates.json"  # candidate intake document (JSON array)

[database]
path = "~/.local/share/hireboard/hireboard.db"

[team]
size = 5  # maximum team size

# Keyword tables driving the scorer. Matching is case-insensitive
# substring matching; tune the lists without touching scoring logic.
[scoring]
senior_titles = [
  "senior", "lead", "principal", "manager",
  "director", "vp", "cto", "ceo",
]
top_companies = [
  "google", "microsoft", "meta", "facebook", "apple",
  "amazon", "netflix", "stripe", "uber", "airbnb",
]
high_value_skills = [
  "machine learning", "python", "golang", "rust",
  "typescript", "react", "kubernetes", "docker",
  "aws", "gcp", "terraform", "data engineering",
]
`
