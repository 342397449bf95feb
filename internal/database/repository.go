package database

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/resilience"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/scoring"
	"github.com/mattn/go-sqlite3"
)

// writeRetryConfig retries writes that lose the race for the SQLite write
// lock after busy_timeout expires. Constraint violations and other hard
// failures are not retried.
var writeRetryConfig = resilience.RetryConfig{
	MaxAttempts:   3,
	InitialDelay:  50 * time.Millisecond,
	MaxDelay:      time.Second,
	BackoffFactor: 2.0,
	JitterEnabled: true,
	Retryable:     isTransientWriteError,
}

func isTransientWriteError(err error) bool {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// Repository handles assessment persistence. Saves are all-or-nothing; a
// failed insert leaves no partial record behind.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveAssessment persists an assembled result under its assessment id
func (r *Repository) SaveAssessment(result scoring.AssessmentResult) (*AssessmentRecord, error) {
	profileJSON, err := json.Marshal(result.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}

	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize recommendations: %w", err)
	}

	record := &AssessmentRecord{
		AssessmentID:    result.AssessmentID,
		Profile:         string(profileJSON),
		Recommendations: string(recommendationsJSON),
		JobDescription:  result.JobDescription,
		CreatedAt:       result.CreatedAt,
	}

	stmt, err := r.db.GetPreparedStatement("insert_assessment")
	if err != nil {
		return nil, err
	}

	err = resilience.RetryWithConfig(context.Background(), writeRetryConfig, func() error {
		_, execErr := stmt.Exec(record.AssessmentID, record.Profile, record.Recommendations,
			record.JobDescription, record.CreatedAt)
		return execErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	return record, nil
}

// GetAssessment fetches a stored record by id. A missing record returns a
// typed not-found error, distinguishable from any store failure.
func (r *Repository) GetAssessment(assessmentID string) (*AssessmentRecord, error) {
	stmt, err := r.db.GetPreparedStatement("get_assessment")
	if err != nil {
		return nil, err
	}

	var record AssessmentRecord
	err = stmt.QueryRow(assessmentID).Scan(
		&record.AssessmentID, &record.Profile, &record.Recommendations,
		&record.JobDescription, &record.CreatedAt,
	)

	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError("assessment", assessmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}

	return &record, nil
}

// AssessmentExists checks whether an assessment id has a stored record
func (r *Repository) AssessmentExists(assessmentID string) (bool, error) {
	stmt, err := r.db.GetPreparedStatement("assessment_exists")
	if err != nil {
		return false, err
	}

	var one int
	err = stmt.QueryRow(assessmentID).Scan(&one)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check assessment existence: %w", err)
	}

	return true, nil
}

// DecodeResult parses a stored record back into the engine's result shape
func (r *AssessmentRecord) DecodeResult() (scoring.AssessmentResult, error) {
	var profile scoring.Profile
	if err := json.Unmarshal([]byte(r.Profile), &profile); err != nil {
		return scoring.AssessmentResult{}, fmt.Errorf("failed to parse stored profile: %w", err)
	}

	var recommendations []scoring.Recommendation
	if err := json.Unmarshal([]byte(r.Recommendations), &recommendations); err != nil {
		return scoring.AssessmentResult{}, fmt.Errorf("failed to parse stored recommendations: %w", err)
	}

	return scoring.AssessmentResult{
		AssessmentID:    r.AssessmentID,
		Profile:         profile,
		Recommendations: recommendations,
		JobDescription:  r.JobDescription,
		CreatedAt:       r.CreatedAt,
	}, nil
}

// LogSubmission records a questionnaire submission
func (r *Repository) LogSubmission(assessmentID, ipAddress, userAgent string, answeredCount int) error {
	entry := NewSubmissionLog(assessmentID, ipAddress, userAgent, answeredCount)

	stmt, err := r.db.GetPreparedStatement("insert_submission_log")
	if err != nil {
		return err
	}

	err = resilience.RetryWithConfig(context.Background(), writeRetryConfig, func() error {
		_, execErr := stmt.Exec(entry.ID, entry.AssessmentID, entry.IPAddress,
			entry.UserAgent, entry.AnsweredCount, entry.CreatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to log submission: %w", err)
	}

	return nil
}
