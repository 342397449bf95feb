package privacy

import (
	"testing"
	"time"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, retentionDays int) (*Service, *database.DB) {
	t.Helper()

	db, err := database.NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, retentionDays), db
}

func TestAnonymizeIPIsStableAndOpaque(t *testing.T) {
	svc, _ := newTestService(t, 30)

	a := svc.AnonymizeIP("192.0.2.10")
	b := svc.AnonymizeIP("192.0.2.10")
	c := svc.AnonymizeIP("192.0.2.11")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
	assert.NotContains(t, a, "192.0.2")
}

func TestRetentionInfoReflectsConfiguration(t *testing.T) {
	svc, _ := newTestService(t, 90)

	info := svc.RetentionInfo()
	assert.Equal(t, 90, info["assessment_retention_days"])
}

func TestNewServiceDefaultsNonPositiveRetention(t *testing.T) {
	svc, _ := newTestService(t, 0)
	assert.Equal(t, 365, svc.RetentionInfo()["assessment_retention_days"])
}

func TestCleanupExpiredRemovesOnlyOldRecords(t *testing.T) {
	svc, db := newTestService(t, 30)

	insert := func(id string, createdAt time.Time) {
		_, err := db.Exec(
			`INSERT INTO assessments (assessment_id, profile, recommendations, job_description, created_at)
			 VALUES (?, '{}', '[]', '', ?)`, id, createdAt)
		require.NoError(t, err)
		_, err = db.Exec(
			`INSERT INTO submission_logs (id, assessment_id, ip_address, user_agent, answered_count, created_at)
			 VALUES (?, ?, 'hashed', '', 0, ?)`, "log-"+id, id, createdAt)
		require.NoError(t, err)
	}

	insert("stale-assessment", time.Now().AddDate(0, 0, -60))
	insert("fresh-assessment", time.Now())

	require.NoError(t, svc.CleanupExpired())

	var remaining int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM assessments").Scan(&remaining))
	assert.Equal(t, 1, remaining)

	var id string
	require.NoError(t, db.QueryRow("SELECT assessment_id FROM assessments").Scan(&id))
	assert.Equal(t, "fresh-assessment", id)

	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM submission_logs").Scan(&remaining))
	assert.Equal(t, 1, remaining)
}
