package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wiseai/quote-engine/internal/recommend"
)

// quoteBrowseLimit caps the GET /quotes sample size.
const quoteBrowseLimit = 100

// insightMessage is the fixed empathy line returned with recommendations.
const insightMessage = "I understand what you're going through. You're not alone in this journey."

// Logger defines the logging interface for the API layer.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Handler handles HTTP requests for the quote engine API.
type Handler struct {
	engine      *recommend.Engine
	resultCount int
	logger      Logger
}

// NewHandler creates the API handler. resultCount is the number of quotes
// returned per recommendation request.
func NewHandler(engine *recommend.Engine, resultCount int, logger Logger) *Handler {
	if resultCount <= 0 {
		resultCount = recommend.DefaultK
	}
	return &Handler{
		engine:      engine,
		resultCount: resultCount,
		logger:      logger,
	}
}

// RecommendRequest is the POST /recommendations request body.
type RecommendRequest struct {
	Text string `json:"text"`
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().Format(time.RFC3339),
		EngineLoaded: h.engine != nil && h.engine.Loaded(),
		DatasetInfo: DatasetInfo{
			TotalQuotes:    h.totalQuotes(),
			EmotionClasses: len(h.emotionLabels()),
		},
	})
}

// Recommend handles POST /recommendations.
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommendation request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no text provided", Status: "error"})
		return
	}

	input := strings.TrimSpace(req.Text)
	if input == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no text provided", Status: "error"})
		return
	}

	if h.engine == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "recommendation engine not available", Status: "error"})
		return
	}

	result := h.engine.Recommend(c.Request.Context(), input, h.resultCount)

	c.JSON(http.StatusOK, RecommendationsResponse{
		Status:               "success",
		InputText:            input,
		Insight:              insightMessage,
		RecommendedQuotes:    result.Recommendations,
		EmotionDetected:      result.Emotion,
		Confidence:           result.Confidence,
		EmotionProbabilities: result.Probabilities,
		Timestamp:            time.Now().Format(time.RFC3339),
	})
}

// ListQuotes handles GET /quotes.
func (h *Handler) ListQuotes(c *gin.Context) {
	if h.engine == nil || !h.engine.Loaded() {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "quote corpus not available", Status: "error"})
		return
	}

	sample := h.engine.SampleQuotes(quoteBrowseLimit)
	quotes := make([]QuoteEntry, 0, len(sample))
	for _, q := range sample {
		quotes = append(quotes, QuoteEntry{Text: q.Text, Author: q.Author, Emotion: q.Emotion})
	}

	c.JSON(http.StatusOK, QuotesResponse{
		Status:      "success",
		Quotes:      quotes,
		TotalQuotes: h.engine.TotalQuotes(),
	})
}

// ListEmotions handles GET /emotions.
func (h *Handler) ListEmotions(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "emotion classifier not available", Status: "error"})
		return
	}

	labels := h.engine.EmotionLabels()
	c.JSON(http.StatusOK, EmotionsResponse{
		Status:        "success",
		Emotions:      labels,
		EmotionCounts: h.engine.EmotionCounts(),
		TotalEmotions: len(labels),
	})
}

func (h *Handler) totalQuotes() int {
	if h.engine == nil {
		return 0
	}
	return h.engine.TotalQuotes()
}

func (h *Handler) emotionLabels() []string {
	if h.engine == nil {
		return nil
	}
	return h.engine.EmotionLabels()
}
