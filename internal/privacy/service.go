package privacy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/database"
)

// Service handles anonymization of client data and retention of stored
// assessments. Client addresses are hashed before they reach the submission
// log, so no raw IP is ever persisted.
type Service struct {
	db            *database.DB
	retentionDays int
}

// NewService creates a new privacy service
func NewService(db *database.DB, retentionDays int) *Service {
	if retentionDays <= 0 {
		retentionDays = 365
	}
	return &Service{db: db, retentionDays: retentionDays}
}

// AnonymizeIP returns a stable one-way hash of a client address. The prefix
// is long enough to correlate submissions from the same address without
// being reversible.
func (s *Service) AnonymizeIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:])[:16]
}

// RetentionInfo describes the active retention policy
func (s *Service) RetentionInfo() map[string]interface{} {
	return map[string]interface{}{
		"assessment_retention_days":     s.retentionDays,
		"submission_log_retention_days": s.retentionDays,
		"ip_anonymization":              "SHA-256, truncated",
	}
}

// CleanupExpired deletes assessments and submission logs older than the
// retention window. Logs go first to satisfy the foreign key.
func (s *Service) CleanupExpired() error {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	logResult, err := s.db.Exec("DELETE FROM submission_logs WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete expired submission logs: %w", err)
	}
	logRows, _ := logResult.RowsAffected()

	assessmentResult, err := s.db.Exec("DELETE FROM assessments WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete expired assessments: %w", err)
	}
	assessmentRows, _ := assessmentResult.RowsAffected()

	if logRows > 0 || assessmentRows > 0 {
		slog.Info("Retention cleanup completed",
			"cutoff", cutoff.Format(time.RFC3339),
			"submission_logs_deleted", logRows,
			"assessments_deleted", assessmentRows)
	}

	return nil
}

// StartCleanupLoop runs retention cleanup on an interval until the context
// is cancelled. One pass runs immediately on start.
func (s *Service) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	if err := s.CleanupExpired(); err != nil {
		slog.Error("Retention cleanup failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CleanupExpired(); err != nil {
				slog.Error("Retention cleanup failed", "error", err)
			}
		}
	}
}
