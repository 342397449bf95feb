package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func endpointLimitedRouter(limit int) *gin.Engine {
	redisClient := &RedisClient{enabled: false}
	config := Config{
		IPLimitPerMin:     100,
		SubmitLimitPerDay: 100,
		BurstMultiplier:   1,
	}
	limiter := NewRateLimiter(redisClient, config, monitoring.NewMetrics())

	router := gin.New()
	router.POST("/admin/ratelimit/reset/:ip",
		limiter.EndpointRateLimitMiddleware("admin", limit),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"reset": c.Param("ip")})
		})
	return router
}

func TestEndpointRateLimitBlocksAfterLimit(t *testing.T) {
	router := endpointLimitedRouter(5)

	statuses := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/ratelimit/reset/10.0.0.9", nil)
		req.RemoteAddr = "198.51.100.20:4321"
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.Contains(t, w.Body.String(), "admin")
		}
	}

	allowed := 0
	for _, code := range statuses {
		if code == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed, "Should allow exactly the endpoint limit")
	assert.Equal(t, http.StatusTooManyRequests, statuses[6])
}

func TestEndpointRateLimitSetsHeaders(t *testing.T) {
	router := endpointLimitedRouter(5)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/ratelimit/reset/10.0.0.9", nil)
	req.RemoteAddr = "203.0.113.30:4321"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Endpoint-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Endpoint-Remaining"))
}
