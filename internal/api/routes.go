package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wiseai/quote-engine/internal/telemetry"
)

// SetupRoutes configures all API routes and middleware.
func SetupRoutes(
	router *gin.Engine,
	handler *Handler,
	tp *telemetry.Provider,
	logger Logger,
	rateLimitRPS int,
	rateLimitBurst int,
) {
	router.Use(Recovery(logger))
	router.Use(RequestMetrics(tp, logger))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(tp.Handler()))
	router.GET("/quotes", handler.ListQuotes)
	router.GET("/emotions", handler.ListEmotions)

	recommendations := router.Group("")
	recommendations.Use(RateLimit(rateLimitRPS, rateLimitBurst))
	recommendations.POST("/recommendations", handler.Recommend)
}
