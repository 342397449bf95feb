package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
)

// Load builds the catalog, applying optional JSON file overrides for the
// question and rule sets, then validates it. Called once in main; a returned
// error is fatal.
func Load(questionsPath, rulesPath string) (*Catalog, error) {
	cat := Default()

	if questionsPath != "" {
		questions, err := loadQuestionsFile(questionsPath)
		if err != nil {
			return nil, err
		}
		cat.Questions = questions
		slog.Info("Loaded question catalog from file", "path", questionsPath, "questions", len(questions))
	}

	if rulesPath != "" {
		rules, err := loadRulesFile(rulesPath)
		if err != nil {
			return nil, err
		}
		cat.Rules = rules
		slog.Info("Loaded recommendation rules from file", "path", rulesPath, "rules", len(rules))
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

func loadQuestionsFile(path string) ([]QuestionSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read question catalog file", err)
	}

	var questions []QuestionSpec
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, errors.NewConfigurationError("failed to parse question catalog file", err)
	}

	return questions, nil
}

func loadRulesFile(path string) ([]RecommendationRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read rule catalog file", err)
	}

	var rules []RecommendationRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errors.NewConfigurationError("failed to parse rule catalog file", err)
	}

	return rules, nil
}
