package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/wiseai/quote-engine/internal/telemetry"
)

// RateLimit rejects requests once the token bucket is exhausted.
// rps: requests per second, burst: maximum burst size.
func RateLimit(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error:  "rate limit exceeded",
				Status: "error",
			})
			return
		}
		c.Next()
	}
}

// Recovery converts panics into JSON 500 responses.
func Recovery(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", "panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:  "internal server error",
					Status: "error",
				})
			}
		}()
		c.Next()
	}
}

// RequestMetrics records per-endpoint request counts and logs slow requests.
func RequestMetrics(tp *telemetry.Provider, logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		tp.RecordRequest(endpoint, c.Writer.Status())

		elapsed := time.Since(start)
		if elapsed > time.Second {
			logger.Warn("slow request",
				"endpoint", endpoint,
				"status", c.Writer.Status(),
				"duration", elapsed.String())
		}
	}
}
