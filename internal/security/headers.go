package security

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets response headers for a JSON-only API.
// Assessment results carry personal data, so those responses are also
// marked non-cacheable for shared proxies.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		// The API never serves markup, so any framing or script source is a
		// misuse of the endpoint
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if isPersonalDataPath(c.Request.URL.Path) {
			c.Header("Cache-Control", "no-store")
		}

		// HSTS only when the deployment terminates TLS itself
		if os.Getenv("ENABLE_HSTS") == "true" {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// isPersonalDataPath reports whether a response on this path contains
// scored profile data tied to an assessment.
func isPersonalDataPath(path string) bool {
	return path == "/submit_questionnaire" || strings.HasPrefix(path, "/results/")
}
