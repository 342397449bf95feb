package scoring

import "time"

// AnswerKind tags the resolved variant of a normalized answer value
type AnswerKind int

const (
	AnswerUnanswered AnswerKind = iota
	AnswerNumeric
	AnswerEnum
	AnswerBoolean
	AnswerText
)

// AnswerValue is a validated answer resolved to a closed variant. Raw
// dynamic values from the transport layer are inspected exactly once, in the
// normalizer; downstream components only ever see this type.
type AnswerValue struct {
	Kind   AnswerKind
	Number float64
	Option string
	Bool   bool
	Text   string
}

// Answered reports whether the value carries a real answer. Presence of the
// key decides this, not truthiness: boolean false and numeric zero are
// answered values, only a missing key is unanswered.
func (v AnswerValue) Answered() bool {
	return v.Kind != AnswerUnanswered
}

// AnswerSet maps every known question id to its validated answer, with
// explicit unanswered markers. Built fresh per submission and owned by a
// single scoring run.
type AnswerSet map[string]AnswerValue

// DimensionScores maps each dimension in the fixed set to its normalized
// score in [0, 100]
type DimensionScores map[string]float64

// ProfileDimension is one active dimension with its display label
type ProfileDimension struct {
	Dimension   string  `json:"dimension"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// Profile is the classified outcome of a scoring run. Primary is never
// absent: the tie-break priority order selects one even when every score
// is zero.
type Profile struct {
	Primary   ProfileDimension   `json:"primary"`
	Secondary []ProfileDimension `json:"secondary"`
	Scores    DimensionScores    `json:"scores"`
}

// Recommendation is a matched rule with its computed strength
type Recommendation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rationale   string  `json:"rationale"`
	Score       float64 `json:"score"`
}

// AssessmentResult is the immutable record handed to persistence. Never
// mutated after assembly.
type AssessmentResult struct {
	AssessmentID    string           `json:"assessment_id"`
	Profile         Profile          `json:"profile"`
	Recommendations []Recommendation `json:"recommendations"`
	JobDescription  string           `json:"job_description,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}
