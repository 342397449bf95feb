package database

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentRecord is the persisted shape of one scored submission. Profile
// and recommendations are kept as serialized JSON strings, exactly as the
// engine assembled them; the record is never mutated after insert.
type AssessmentRecord struct {
	AssessmentID    string    `json:"assessment_id" db:"assessment_id"`
	Profile         string    `json:"profile" db:"profile"`
	Recommendations string    `json:"recommendations" db:"recommendations"`
	JobDescription  string    `json:"job_description,omitempty" db:"job_description"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// SubmissionLog tracks questionnaire submissions for operational visibility
type SubmissionLog struct {
	ID            string    `json:"id" db:"id"`
	AssessmentID  string    `json:"assessment_id" db:"assessment_id"`
	IPAddress     string    `json:"-" db:"ip_address"`
	UserAgent     string    `json:"-" db:"user_agent"`
	AnsweredCount int       `json:"answered_count" db:"answered_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewSubmissionLog creates a new submission log entry with generated ID
func NewSubmissionLog(assessmentID, ipAddress, userAgent string, answeredCount int) *SubmissionLog {
	return &SubmissionLog{
		ID:            uuid.New().String(),
		AssessmentID:  assessmentID,
		IPAddress:     ipAddress,
		UserAgent:     userAgent,
		AnsweredCount: answeredCount,
		CreatedAt:     time.Now(),
	}
}
