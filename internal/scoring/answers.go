package scoring

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
)

// NormalizeAnswers validates and coerces a raw answer mapping into a typed
// AnswerSet covering every question in the catalog. Missing answers become
// explicit unanswered markers; partial questionnaires are scored, never
// rejected. Unknown question ids are ignored for forward compatibility with
// older or newer question sets. A value outside its declared domain fails
// with a validation error naming the question id and the received value.
func (e *Engine) NormalizeAnswers(raw map[string]interface{}) (AnswerSet, error) {
	answers := make(AnswerSet, len(e.catalog.Questions))

	for _, q := range e.catalog.Questions {
		value, present := raw[q.ID]
		if !present {
			answers[q.ID] = AnswerValue{Kind: AnswerUnanswered}
			continue
		}

		normalized, err := normalizeValue(q, value)
		if err != nil {
			return nil, err
		}
		answers[q.ID] = normalized
	}

	return answers, nil
}

func normalizeValue(q catalog.QuestionSpec, value interface{}) (AnswerValue, error) {
	switch q.Domain {
	case catalog.DomainEnum:
		key, ok := value.(string)
		if !ok {
			return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
				"expected an option key string")
		}
		for _, opt := range q.Options {
			if opt.Key == key {
				return AnswerValue{Kind: AnswerEnum, Option: key, Number: opt.Score}, nil
			}
		}
		return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
			"unrecognized option key")

	case catalog.DomainNumeric:
		num, ok := toFloat(value)
		if !ok {
			return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
				"expected a number")
		}
		if num < q.Min || num > q.Max {
			return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
				fmt.Sprintf("outside declared range [%g, %g]", q.Min, q.Max))
		}
		return AnswerValue{Kind: AnswerNumeric, Number: num}, nil

	case catalog.DomainBoolean:
		b, ok := value.(bool)
		if !ok {
			return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
				"expected a boolean")
		}
		num := 0.0
		if b {
			num = 1.0
		}
		return AnswerValue{Kind: AnswerBoolean, Bool: b, Number: num}, nil

	case catalog.DomainFreeText:
		text, ok := value.(string)
		if !ok {
			return AnswerValue{}, errors.NewAnswerValidationError(q.ID, value,
				"expected free text")
		}
		return AnswerValue{Kind: AnswerText, Text: text}, nil
	}

	// unreachable with a validated catalog
	return AnswerValue{}, errors.NewConfigurationError(
		fmt.Sprintf("question %q has unknown answer domain %q", q.ID, q.Domain), nil)
}

// toFloat accepts the numeric shapes a JSON body or typed caller can produce
func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
