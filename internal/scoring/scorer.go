package scoring

import "github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScoreDimensions aggregates a normalized answer set into the fixed
// dimension set. Each answered question applies its (dimension, weight)
// contribution rules; unanswered questions contribute nothing. Per-dimension
// raw sums are scaled against the theoretical maximum achievable for that
// dimension so scores are comparable regardless of how many questions feed
// each one. Pure and deterministic: iteration follows the catalog's question
// order and the dimension priority order, never map order.
func (e *Engine) ScoreDimensions(answers AnswerSet) DimensionScores {
	raw := make(map[string]float64, len(catalog.DimensionPriority))
	for _, dim := range catalog.DimensionPriority {
		raw[dim] = 0
	}

	for _, q := range e.catalog.Questions {
		answer := answers[q.ID]
		if !answer.Answered() || answer.Kind == AnswerText {
			continue
		}
		for _, contrib := range q.Contributions {
			raw[contrib.Dimension] += contrib.Weight * answer.Number
		}
	}

	scores := make(DimensionScores, len(raw))
	for _, dim := range catalog.DimensionPriority {
		max := e.maxAchievable[dim]
		if max <= 0 {
			scores[dim] = 0
			continue
		}
		scores[dim] = clip(raw[dim], 0, max) / max * 100
	}

	return scores
}

// computeMaxAchievable derives, per dimension, the largest raw sum any
// answer set could produce given the question catalog. Negative weights paired
// with negative option scores still contribute positively at the extreme, so
// the maximum is taken over each question's full answer domain.
func computeMaxAchievable(questions []catalog.QuestionSpec) map[string]float64 {
	max := make(map[string]float64, len(catalog.DimensionPriority))
	for _, dim := range catalog.DimensionPriority {
		max[dim] = 0
	}

	for _, q := range questions {
		for _, contrib := range q.Contributions {
			max[contrib.Dimension] += maxContribution(q, contrib.Weight)
		}
	}

	return max
}

func maxContribution(q catalog.QuestionSpec, weight float64) float64 {
	switch q.Domain {
	case catalog.DomainEnum:
		best := 0.0
		for i, opt := range q.Options {
			c := weight * opt.Score
			if i == 0 || c > best {
				best = c
			}
		}
		if best < 0 {
			return 0
		}
		return best
	case catalog.DomainNumeric:
		lo, hi := weight*q.Min, weight*q.Max
		best := hi
		if lo > hi {
			best = lo
		}
		if best < 0 {
			return 0
		}
		return best
	case catalog.DomainBoolean:
		if weight > 0 {
			return weight
		}
		return 0
	}
	return 0
}
