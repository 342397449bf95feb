package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"
)

// Match scores the rule catalog against a profile and returns a ranked,
// deduplicated recommendation list. A rule qualifies only when every required
// condition holds; satisfied preferred conditions raise the match score but
// their absence never excludes the rule. Match score is the satisfied weight
// divided by the rule's maximum achievable weight, so it lands in [0, 1].
// Ordering is descending match score with ties broken by ascending rule id;
// the list is capped at the configured maximum and may legitimately be empty.
func (e *Engine) Match(profile Profile) []Recommendation {
	matched := make([]Recommendation, 0, len(e.catalog.Rules))

	for _, rule := range e.catalog.Rules {
		score, ok := evaluateRule(rule, profile.Scores)
		if !ok {
			continue
		}
		matched = append(matched, Recommendation{
			ID:          rule.ID,
			Title:       rule.Title,
			Description: rule.Description,
			Rationale:   resolveRationale(rule.Rationale, profile, score),
			Score:       score,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].ID < matched[j].ID
	})

	if e.catalog.MaxRecommendations > 0 && len(matched) > e.catalog.MaxRecommendations {
		matched = matched[:e.catalog.MaxRecommendations]
	}

	return matched
}

// evaluateRule returns the normalized match score and whether the rule
// qualifies at all. Conditions read the full score map, so rules may
// reference dimensions outside the profile's active set.
func evaluateRule(rule catalog.RecommendationRule, scores DimensionScores) (float64, bool) {
	satisfied := 0.0
	for _, cond := range rule.Conditions {
		if conditionHolds(cond, scores[cond.Dimension]) {
			satisfied += cond.Weight
		} else if cond.Required {
			return 0, false
		}
	}

	maxWeight := rule.MaxWeight()
	if maxWeight <= 0 {
		return 0, false
	}

	return satisfied / maxWeight, true
}

func conditionHolds(cond catalog.Condition, score float64) bool {
	switch cond.Comparator {
	case catalog.CompGTE:
		return score >= cond.Threshold
	case catalog.CompGT:
		return score > cond.Threshold
	case catalog.CompLTE:
		return score <= cond.Threshold
	case catalog.CompLT:
		return score < cond.Threshold
	}
	return false
}

// resolveRationale fills the template tokens a rule's rationale may carry
func resolveRationale(template string, profile Profile, score float64) string {
	out := strings.ReplaceAll(template, "{primary}", profile.Primary.Label)
	out = strings.ReplaceAll(out, "{match_pct}", fmt.Sprintf("%.0f", score*100))
	return out
}
