package catalog

import (
	"fmt"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
)

// AnswerDomain declares the shape of value a question accepts
type AnswerDomain string

const (
	DomainEnum     AnswerDomain = "enum"
	DomainNumeric  AnswerDomain = "numeric"
	DomainBoolean  AnswerDomain = "boolean"
	DomainFreeText AnswerDomain = "free_text"
)

// Option is one selectable answer for an enumerated question. Score is the
// fixed value the option feeds into dimension contributions, in [-1, 1].
type Option struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Contribution is a single (dimension, weight) scoring rule on a question
type Contribution struct {
	Dimension string  `json:"dimension"`
	Weight    float64 `json:"weight"`
}

// QuestionSpec is the immutable definition of one questionnaire item.
// Loaded once at process start; never mutated.
type QuestionSpec struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	Domain        AnswerDomain   `json:"domain"`
	Options       []Option       `json:"options,omitempty"`
	Min           float64        `json:"min,omitempty"`
	Max           float64        `json:"max,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Comparator operators for recommendation rule conditions
const (
	CompGTE = "gte"
	CompGT  = "gt"
	CompLTE = "lte"
	CompLT  = "lt"
)

// Condition is a threshold check against one dimension score
type Condition struct {
	Dimension  string  `json:"dimension"`
	Comparator string  `json:"comparator"`
	Threshold  float64 `json:"threshold"`
	Weight     float64 `json:"weight"`
	Required   bool    `json:"required"`
}

// RecommendationRule proposes a job-fit suggestion when its conditions are
// satisfied by a profile. Static configuration; immutable.
type RecommendationRule struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Rationale   string      `json:"rationale"`
	Conditions  []Condition `json:"conditions"`
}

// MaxWeight returns the rule's maximum achievable condition weight
func (r RecommendationRule) MaxWeight() float64 {
	total := 0.0
	for _, cond := range r.Conditions {
		total += cond.Weight
	}
	return total
}

// Catalog bundles the validated question and rule sets plus classifier
// tuning. Constructed once at startup and injected into the engine.
type Catalog struct {
	Questions []QuestionSpec
	Rules     []RecommendationRule

	// SignificantThreshold is the minimum normalized score for a dimension
	// to qualify as secondary.
	SignificantThreshold float64

	// MaxRecommendations caps the ranked recommendation list
	MaxRecommendations int
}

// Question returns the spec for id, or false when unknown
func (c *Catalog) Question(id string) (QuestionSpec, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuestionSpec{}, false
}

// Default returns the built-in catalog with standard tuning
func Default() *Catalog {
	return &Catalog{
		Questions:            DefaultQuestions(),
		Rules:                DefaultRules(),
		SignificantThreshold: 60.0,
		MaxRecommendations:   10,
	}
}

// Validate checks the catalog for internal consistency. Any failure is a
// configuration error and must abort startup.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return errors.NewConfigurationError("question catalog is empty", nil)
	}
	if c.SignificantThreshold < 0 || c.SignificantThreshold > 100 {
		return errors.NewConfigurationError(
			fmt.Sprintf("significant threshold %.1f outside [0, 100]", c.SignificantThreshold), nil)
	}
	if c.MaxRecommendations < 0 {
		return errors.NewConfigurationError("max recommendations must not be negative", nil)
	}

	seen := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return errors.NewConfigurationError("question with empty id", nil)
		}
		if seen[q.ID] {
			return errors.NewConfigurationError(fmt.Sprintf("duplicate question id %q", q.ID), nil)
		}
		seen[q.ID] = true

		switch q.Domain {
		case DomainEnum:
			if len(q.Options) == 0 {
				return errors.NewConfigurationError(
					fmt.Sprintf("enum question %q has no options", q.ID), nil)
			}
			optKeys := make(map[string]bool, len(q.Options))
			for _, opt := range q.Options {
				if opt.Key == "" {
					return errors.NewConfigurationError(
						fmt.Sprintf("question %q has an option with empty key", q.ID), nil)
				}
				if optKeys[opt.Key] {
					return errors.NewConfigurationError(
						fmt.Sprintf("question %q has duplicate option %q", q.ID, opt.Key), nil)
				}
				optKeys[opt.Key] = true
			}
		case DomainNumeric:
			if q.Min >= q.Max {
				return errors.NewConfigurationError(
					fmt.Sprintf("numeric question %q has invalid range [%.1f, %.1f]", q.ID, q.Min, q.Max), nil)
			}
		case DomainBoolean:
			// no extra shape requirements
		case DomainFreeText:
			if len(q.Contributions) > 0 {
				return errors.NewConfigurationError(
					fmt.Sprintf("free-text question %q must not have contributions", q.ID), nil)
			}
		default:
			return errors.NewConfigurationError(
				fmt.Sprintf("question %q has unknown answer domain %q", q.ID, q.Domain), nil)
		}

		for _, contrib := range q.Contributions {
			if !IsKnownDimension(contrib.Dimension) {
				return errors.NewConfigurationError(
					fmt.Sprintf("question %q references undefined dimension %q", q.ID, contrib.Dimension), nil)
			}
			if contrib.Weight == 0 {
				return errors.NewConfigurationError(
					fmt.Sprintf("question %q has a zero-weight contribution to %q", q.ID, contrib.Dimension), nil)
			}
		}
	}

	for _, dim := range DimensionPriority {
		if _, ok := DimensionLabels[dim]; !ok {
			return errors.NewConfigurationError(
				fmt.Sprintf("dimension %q has no configured label", dim), nil)
		}
	}

	ruleSeen := make(map[string]bool, len(c.Rules))
	for _, rule := range c.Rules {
		if rule.ID == "" {
			return errors.NewConfigurationError("recommendation rule with empty id", nil)
		}
		if ruleSeen[rule.ID] {
			return errors.NewConfigurationError(fmt.Sprintf("duplicate rule id %q", rule.ID), nil)
		}
		ruleSeen[rule.ID] = true

		if rule.Title == "" {
			return errors.NewConfigurationError(fmt.Sprintf("rule %q has no title", rule.ID), nil)
		}
		if len(rule.Conditions) == 0 {
			return errors.NewConfigurationError(fmt.Sprintf("rule %q has no conditions", rule.ID), nil)
		}

		for _, cond := range rule.Conditions {
			if !IsKnownDimension(cond.Dimension) {
				return errors.NewConfigurationError(
					fmt.Sprintf("rule %q references undefined dimension %q", rule.ID, cond.Dimension), nil)
			}
			switch cond.Comparator {
			case CompGTE, CompGT, CompLTE, CompLT:
			default:
				return errors.NewConfigurationError(
					fmt.Sprintf("rule %q has unknown comparator %q", rule.ID, cond.Comparator), nil)
			}
			if cond.Weight <= 0 {
				return errors.NewConfigurationError(
					fmt.Sprintf("rule %q has non-positive condition weight on %q", rule.ID, cond.Dimension), nil)
			}
		}
	}

	return nil
}
