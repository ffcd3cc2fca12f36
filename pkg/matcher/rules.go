package matcher

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/umputun/feynman/pkg/domain"
)

//go:embed patterns.json
var defaultRules []byte

// rulesFile is the on-disk and embedded layout of the rule configuration
type rulesFile struct {
	Patterns []domain.PatternRule `json:"patterns"`
}

// DefaultRules returns the bundled rule set. The embedded configuration ships
// with the binary, so a parse failure here is a build defect.
func DefaultRules() ([]domain.PatternRule, error) {
	return parseRules(defaultRules)
}

// LoadRules reads a rule set from a JSON file, used when the config points at
// a custom rules file
func LoadRules(path string) ([]domain.PatternRule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return parseRules(data)
}

func parseRules(data []byte) ([]domain.PatternRule, error) {
	var rf rulesFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(rf.Patterns) == 0 {
		return nil, fmt.Errorf("rules file contains no patterns")
	}
	for i, r := range rf.Patterns {
		if r.ID == "" {
			return nil, fmt.Errorf("pattern %d has no id", i)
		}
		if r.Rule == "" {
			return nil, fmt.Errorf("pattern %s has no rule expression", r.ID)
		}
	}
	return rf.Patterns, nil
}
