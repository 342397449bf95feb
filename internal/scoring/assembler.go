package scoring

import (
	"regexp"
	"time"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
	"github.com/google/uuid"
)

// assessmentIDPattern is the persistence collaborator's key format. UUIDs
// satisfy it; so do short opaque ids a caller may supply.
var assessmentIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// NewAssessmentID generates a fresh opaque assessment identifier
func NewAssessmentID() string {
	return uuid.New().String()
}

// Assemble packages a profile and ranked recommendations into the immutable
// result record. The identifier must be non-empty and conform to the store's
// key format; violation fails before any persistence attempt. Performs no
// I/O. Storing and transmitting the result belong to the collaborators.
func (e *Engine) Assemble(assessmentID string, profile Profile, recommendations []Recommendation, jobDescription string) (AssessmentResult, error) {
	if assessmentID == "" {
		return AssessmentResult{}, errors.NewValidationError("assessment id must not be empty")
	}
	if !assessmentIDPattern.MatchString(assessmentID) {
		return AssessmentResult{}, errors.NewValidationError(
			"assessment id does not conform to the store key format", assessmentID)
	}

	if recommendations == nil {
		recommendations = []Recommendation{}
	}

	return AssessmentResult{
		AssessmentID:    assessmentID,
		Profile:         profile,
		Recommendations: recommendations,
		JobDescription:  jobDescription,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
