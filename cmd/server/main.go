package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/cache"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/database"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/monitoring"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/privacy"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/ratelimit"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/scoring"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/security"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")
	questionsFile := os.Getenv("QUESTIONS_FILE")
	rulesFile := os.Getenv("RULES_FILE")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvIntOrDefault("REDIS_DB", 0)
	cacheTTL := time.Duration(getEnvIntOrDefault("CACHE_TTL_MINUTES", 15)) * time.Minute

	// Load and validate the questionnaire catalog. A broken catalog is a
	// configuration error and the process must not start.
	cat, err := catalog.Load(questionsFile, rulesFile)
	if err != nil {
		slog.Error("Failed to load questionnaire catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Questionnaire catalog loaded",
		"questions", len(cat.Questions),
		"rules", len(cat.Rules))

	// Initialize database and repository
	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	// Privacy service: IP anonymization and retention cleanup
	retentionDays := getEnvIntOrDefault("RETENTION_DAYS", 365)
	privacySvc := privacy.NewService(db, retentionDays)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go privacySvc.StartCleanupLoop(cleanupCtx, 24*time.Hour)

	// Build the scoring engine over the validated catalog
	engine := scoring.NewEngine(cat)

	r := gin.New()

	// Initialize monitoring system
	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	// Add monitoring middleware first (to capture all requests)
	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))

	// Add error handling middleware
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	// Security middleware setup
	securityConfig := security.DefaultSecurityConfig()
	securityMiddleware := security.NewSecurityMiddleware(securityConfig)

	r.Use(security.SecurityHeadersMiddleware())
	r.Use(securityMiddleware.RequestTimeout)
	r.Use(securityMiddleware.ValidateContentType)
	r.Use(securityMiddleware.MaxBodySize)

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = securityConfig.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Rate limiting with Redis, degrading to in-memory token buckets
	redisClient, err := ratelimit.NewRedisClient(redisAddr, redisPassword, redisDB)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()

	rateLimitConfig := ratelimit.DefaultConfig()
	rateLimitConfig.IPLimitPerMin = getEnvIntOrDefault("RATE_LIMIT_PER_MIN", rateLimitConfig.IPLimitPerMin)
	rateLimitConfig.SubmitLimitPerDay = getEnvIntOrDefault("SUBMIT_LIMIT_PER_DAY", rateLimitConfig.SubmitLimitPerDay)

	rateLimiter := ratelimit.NewRateLimiter(redisClient, rateLimitConfig, appMetrics)
	r.Use(rateLimiter.IPRateLimitMiddleware())
	r.Use(rateLimiter.SubmissionRateLimitMiddleware())

	// Response cache keyed by submission body hash
	appCache := cache.NewCache(cacheTTL)
	r.Use(appCache.Middleware(appMetrics, appLogger))

	r.GET("/health", func(c *gin.Context) {
		healthResponse := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
			"catalog": gin.H{
				"questions": len(cat.Questions),
				"rules":     len(cat.Rules),
			},
			"metrics": appMetrics.GetStats(),
		}

		if err := db.Ping(); err != nil {
			healthResponse["status"] = "degraded"
			healthResponse["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, healthResponse)
			return
		}

		c.JSON(http.StatusOK, healthResponse)
	})

	// Questionnaire definition for clients to render
	r.GET("/questionnaire", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"questions":  cat.Questions,
			"dimensions": catalog.DimensionLabels,
			"count":      len(cat.Questions),
		})
	})

	r.POST("/submit_questionnaire", func(c *gin.Context) {
		start := time.Now()

		var req types.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body: answers object is required")
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		// Job description is stored verbatim alongside the assessment but
		// never scored; it still gets sanitized like any free-text input.
		if req.JobDescription != "" {
			req.JobDescription = securityMiddleware.SanitizeInput(req.JobDescription)
			if err := securityMiddleware.ValidateInput(req.JobDescription); err != nil {
				appErr := errors.NewValidationError("job_description rejected: " + err.Error())
				errors.LogError(c, appErr)
				c.JSON(appErr.HTTPStatus, appErr)
				return
			}
		}

		assessmentID := scoring.NewAssessmentID()

		result, err := engine.Evaluate(assessmentID, req.Answers, req.JobDescription)
		if err != nil {
			appErr := errors.ToAppError(err)
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		storeStart := time.Now()
		if _, err := repo.SaveAssessment(result); err != nil {
			appLogger.StoreLogger("save_assessment", assessmentID, false, time.Since(storeStart))
			appErr := errors.ToAppError(err)
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		appLogger.StoreLogger("save_assessment", assessmentID, true, time.Since(storeStart))

		// Submission audit log is best-effort and off the hot path
		go func(ip, userAgent string, answered int) {
			if err := repo.LogSubmission(assessmentID, ip, userAgent, answered); err != nil {
				slog.Warn("Failed to log submission", "assessment_id", assessmentID, "error", err)
			}
		}(privacySvc.AnonymizeIP(c.ClientIP()), c.GetHeader("User-Agent"), len(req.Answers))

		appMetrics.IncrementSubmissionsScored()
		appLogger.ScoringLogger(assessmentID, result.Profile.Primary.Dimension,
			len(req.Answers), len(result.Recommendations), time.Since(start), false)

		c.JSON(http.StatusOK, types.SubmitResponse{
			AssessmentID:    result.AssessmentID,
			Profile:         result.Profile,
			Recommendations: result.Recommendations,
			CreatedAt:       result.CreatedAt.Format(time.RFC3339),
		})
	})

	r.GET("/results/:assessment_id", func(c *gin.Context) {
		assessmentID := c.Param("assessment_id")

		record, err := repo.GetAssessment(assessmentID)
		if err != nil {
			if errors.IsNotFound(err) {
				appMetrics.IncrementResultNotFound()
			}
			appErr := errors.ToAppError(err)
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		result, err := record.DecodeResult()
		if err != nil {
			appErr := errors.ToAppError(err)
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementResultFetch()

		c.JSON(http.StatusOK, types.ResultResponse{
			AssessmentID:    result.AssessmentID,
			Profile:         result.Profile,
			Recommendations: result.Recommendations,
			CreatedAt:       result.CreatedAt.Format(time.RFC3339),
		})
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		stats := appMetrics.GetStats()
		c.JSON(http.StatusOK, stats)
	})

	// Cache stats endpoint
	r.GET("/cache/stats", func(c *gin.Context) {
		stats := appCache.Stats()
		c.JSON(http.StatusOK, stats)
	})

	// Database pool stats endpoint
	r.GET("/pools/database", func(c *gin.Context) {
		stats := db.GetPoolStats()
		c.JSON(http.StatusOK, gin.H{
			"pool":  "database",
			"stats": stats,
		})
	})

	// Data retention policy endpoint
	r.GET("/privacy/retention", func(c *gin.Context) {
		c.JSON(http.StatusOK, privacySvc.RetentionInfo())
	})

	// Rate limit status and admin endpoints. Mutating admin routes get a
	// tighter per-minute limit of their own on top of the global IP limit.
	adminLimit := getEnvIntOrDefault("ADMIN_RATE_LIMIT_PER_MIN", 10)
	adminLimiter := rateLimiter.EndpointRateLimitMiddleware("admin", adminLimit)
	r.GET("/ratelimit/stats", rateLimiter.HandleRateLimitStatus())
	r.GET("/admin/ratelimit", rateLimiter.HandleAdminRateLimits())
	r.POST("/admin/ratelimit/reset/:ip", adminLimiter, rateLimiter.HandleAdminResetSubmissions())
	r.POST("/admin/ratelimit/invalidate/:ip", adminLimiter, rateLimiter.HandleAdminInvalidateIP())

	// Performance profiling endpoints (development only)
	if os.Getenv("ENABLE_PROFILING") == "true" {
		slog.Info("Enabling performance profiling endpoints")
		r.GET("/debug/pprof/*filepath", gin.WrapF(pprof.Index))
		r.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
		r.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
		r.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
		r.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}
