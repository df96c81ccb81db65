package api

import "github.com/wiseai/quote-engine/internal/domain"

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status       string      `json:"status"`
	Timestamp    string      `json:"timestamp"`
	EngineLoaded bool        `json:"engine_loaded"`
	DatasetInfo  DatasetInfo `json:"dataset_info"`
}

// DatasetInfo summarizes the loaded corpus for health reporting.
type DatasetInfo struct {
	TotalQuotes    int `json:"total_quotes"`
	EmotionClasses int `json:"emotion_classes"`
}

// RecommendationsResponse is the POST /recommendations success body.
type RecommendationsResponse struct {
	Status               string                  `json:"status"`
	InputText            string                  `json:"input_text"`
	Insight              string                  `json:"insight"`
	RecommendedQuotes    []domain.Recommendation `json:"recommended_quotes"`
	EmotionDetected      string                  `json:"emotion_detected"`
	Confidence           float64                 `json:"confidence"`
	EmotionProbabilities map[string]float64      `json:"emotion_probabilities"`
	Timestamp            string                  `json:"timestamp"`
}

// QuoteEntry is one quote in the GET /quotes body.
type QuoteEntry struct {
	Text    string `json:"text"`
	Author  string `json:"author"`
	Emotion string `json:"emotion"`
}

// QuotesResponse is the GET /quotes success body.
type QuotesResponse struct {
	Status      string       `json:"status"`
	Quotes      []QuoteEntry `json:"quotes"`
	TotalQuotes int          `json:"total_quotes"`
}

// EmotionsResponse is the GET /emotions success body.
type EmotionsResponse struct {
	Status        string         `json:"status"`
	Emotions      []string       `json:"emotions"`
	EmotionCounts map[string]int `json:"emotion_counts"`
	TotalEmotions int            `json:"total_emotions"`
}
