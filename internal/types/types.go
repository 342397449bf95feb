package types

import "github.com/ZanzyTHEbar/workstyle-profiler/internal/scoring"

// SubmitRequest is the body of a questionnaire submission. Answers map
// question ids to dynamically typed values, resolved by the engine's
// normalizer. JobDescription is accepted as opaque pass-through; it is
// stored with the assessment but never consumed by scoring.
type SubmitRequest struct {
	Answers        map[string]interface{} `json:"answers" binding:"required"`
	JobDescription string                 `json:"job_description,omitempty"`
}

// SubmitResponse is returned for a scored submission
type SubmitResponse struct {
	AssessmentID    string                   `json:"assessment_id"`
	Profile         scoring.Profile          `json:"profile"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
	CreatedAt       string                   `json:"created_at"`
}

// ResultResponse is returned when fetching a stored assessment
type ResultResponse struct {
	AssessmentID    string                   `json:"assessment_id"`
	Profile         scoring.Profile          `json:"profile"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
	CreatedAt       string                   `json:"created_at"`
}
