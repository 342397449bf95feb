package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIncrements(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementCacheHit()
	m.IncrementCacheHit()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementSubmissionsScored()
	m.IncrementResultFetch()
	m.IncrementResultNotFound()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.Equal(t, float64(50), stats["error_rate_percent"])
	assert.Equal(t, int64(3), stats["cache_hits"])
	assert.Equal(t, int64(1), stats["cache_misses"])
	assert.Equal(t, float64(75), stats["cache_hit_rate_percent"])
	assert.Equal(t, int64(1), stats["submissions_scored"])
	assert.Equal(t, int64(1), stats["result_fetches"])
	assert.Equal(t, int64(1), stats["result_not_found"])
}

func TestRatesAreZeroWithoutTraffic(t *testing.T) {
	stats := NewMetrics().GetStats()

	assert.Equal(t, float64(0), stats["error_rate_percent"])
	assert.Equal(t, float64(0), stats["cache_hit_rate_percent"])
	assert.Equal(t, int64(0), stats["total_requests"])
}

func TestStatusCodeDistribution(t *testing.T) {
	m := NewMetrics()

	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(400)
	m.RecordRequestByStatus(404)

	dist := m.GetStatusCodeDistribution()
	assert.Equal(t, int64(2), dist[200])
	assert.Equal(t, int64(1), dist[400])
	assert.Equal(t, int64(1), dist[404])
	assert.Equal(t, int64(0), dist[500])
}

func TestPercentileResponseTime(t *testing.T) {
	m := NewMetrics()

	assert.Equal(t, time.Duration(0), m.GetPercentileResponseTime(95))

	for i := 1; i <= 100; i++ {
		m.RecordResponseTime(time.Duration(i) * time.Millisecond)
	}

	p50 := m.GetPercentileResponseTime(50)
	p95 := m.GetPercentileResponseTime(95)
	p99 := m.GetPercentileResponseTime(99)

	assert.LessOrEqual(t, p50, p95)
	assert.LessOrEqual(t, p95, p99)
	assert.GreaterOrEqual(t, p95, 90*time.Millisecond)
	assert.LessOrEqual(t, p99, 100*time.Millisecond)
}

func TestResponseTimeSampleWindowIsBounded(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 1500; i++ {
		m.RecordResponseTime(time.Millisecond)
	}

	m.ResponseTimesMutex.RLock()
	defer m.ResponseTimesMutex.RUnlock()
	assert.LessOrEqual(t, len(m.ResponseTimes), 1000)
}

func TestRateLimitStats(t *testing.T) {
	m := NewMetrics()

	m.IncrementRateLimitIPBlock()
	m.IncrementRateLimitIPBlock()
	m.IncrementRateLimitDailyBlock()
	m.IncrementRateLimitRedisError()
	m.IncrementRateLimitFallback()
	m.IncrementRateLimitEndpoint("/submit_questionnaire")
	m.IncrementRateLimitEndpoint("/submit_questionnaire")

	stats := m.GetRateLimitStats()
	assert.Equal(t, int64(2), stats["ip_blocks"])
	assert.Equal(t, int64(1), stats["daily_blocks"])
	assert.Equal(t, int64(1), stats["redis_errors"])
	assert.Equal(t, int64(1), stats["fallback_count"])

	endpointBlocks, ok := stats["endpoint_blocks"].(map[string]int64)
	require.True(t, ok)
	assert.Equal(t, int64(2), endpointBlocks["/submit_questionnaire"])

	// rate limit stats are nested under the main stats payload
	nested, ok := m.GetStats()["rate_limit"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(2), nested["ip_blocks"])
}

func TestReset(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementError()
	m.IncrementSubmissionsScored()
	m.RecordResponseTime(5 * time.Millisecond)
	m.RecordRequestByStatus(500)
	m.IncrementRateLimitEndpoint("/submit_questionnaire")

	m.Reset()

	stats := m.GetStats()
	assert.Equal(t, int64(0), stats["total_requests"])
	assert.Equal(t, int64(0), stats["error_count"])
	assert.Equal(t, int64(0), stats["submissions_scored"])
	assert.Equal(t, time.Duration(0), m.GetPercentileResponseTime(99))
	assert.Empty(t, m.GetStatusCodeDistribution())
	assert.Empty(t, m.GetRateLimitStats()["endpoint_blocks"])
}

func TestConcurrentRecordingIsSafe(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncrementRequest()
				m.RecordResponseTime(time.Millisecond)
				m.RecordRequestByStatus(200)
				m.IncrementRateLimitEndpoint("/questionnaire")
			}
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(5000), stats["total_requests"])
	assert.Equal(t, int64(5000), m.GetStatusCodeDistribution()[200])
	assert.Equal(t, int64(5000), m.GetRateLimitStats()["endpoint_blocks"].(map[string]int64)["/questionnaire"])
}
