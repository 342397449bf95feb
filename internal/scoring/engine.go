package scoring

import "github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"

// Engine runs the questionnaire-to-profile pipeline. It holds only immutable
// catalog data, so a single instance is safe for parallel use across
// concurrent submissions.
type Engine struct {
	catalog       *catalog.Catalog
	maxAchievable map[string]float64
}

// NewEngine builds an engine over a validated catalog
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog:       cat,
		maxAchievable: computeMaxAchievable(cat.Questions),
	}
}

// Evaluate runs the full pipeline for one submission: normalize, score,
// classify, match, assemble. Identical raw answers always yield an identical
// profile and recommendation ordering; only the id and timestamp vary.
func (e *Engine) Evaluate(assessmentID string, rawAnswers map[string]interface{}, jobDescription string) (AssessmentResult, error) {
	answers, err := e.NormalizeAnswers(rawAnswers)
	if err != nil {
		return AssessmentResult{}, err
	}

	scores := e.ScoreDimensions(answers)

	profile, err := e.Classify(scores)
	if err != nil {
		return AssessmentResult{}, err
	}

	recommendations := e.Match(profile)

	return e.Assemble(assessmentID, profile, recommendations, jobDescription)
}
