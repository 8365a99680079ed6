package candidate

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Load reads and parses the candidate document at the given path.
// The document is a JSON array of candidate records.
func Load(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("candidate file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate file: %w", err)
	}

	return candidates, nil
}

// LoadOrEmpty loads the candidate document, degrading to an empty pool
// when the file is missing or malformed. The failure is logged, not
// propagated: every downstream operation handles an empty pool by
// producing empty output.
func LoadOrEmpty(path string, log *zap.Logger) []Candidate {
	candidates, err := Load(path)
	if err != nil {
		log.Warn("candidate data unavailable, continuing with empty pool",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	log.Debug("loaded candidate pool",
		zap.String("path", path),
		zap.Int("count", len(candidates)),
	)
	return candidates
}
