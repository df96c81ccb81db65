package domain

import "strings"

// Quote is a single corpus record. Quotes are created once by the offline
// merge batch and are immutable afterwards; the serving process shares the
// loaded corpus read-only across requests.
type Quote struct {
	ID      int    `db:"id"      json:"-"`
	Text    string `db:"text"    json:"text"`
	Author  string `db:"author"  json:"author"`
	Tags    string `db:"tags"    json:"tags,omitempty"`
	Emotion string `db:"emotion" json:"emotion"`
}

// WordCount returns the number of whitespace-separated words in the quote text.
func (q Quote) WordCount() int {
	return len(strings.Fields(q.Text))
}

// Recommendation is a per-request result record. The emotion field carries the
// emotion that produced the match, which may differ from the quote's stored
// label on the fallback path.
type Recommendation struct {
	Text       string  `json:"text"`
	Author     string  `json:"author"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence,omitempty"`
	MatchType  string  `json:"match_type,omitempty"`
}

// MatchType values for a Recommendation.
const (
	MatchEmotionBased    = "emotion_based"
	MatchSimilarityBased = "similarity_based"
	MatchFallback        = "fallback"
)

// Emotion labels. The set is closed; EmotionGeneral is the sentinel assigned
// when no taxonomy keyword matches.
const (
	EmotionGrief       = "grief"
	EmotionDepression  = "depression"
	EmotionAnxiety     = "anxiety"
	EmotionMotivation  = "motivation"
	EmotionResilience  = "resilience"
	EmotionMindfulness = "mindfulness"
	EmotionHappiness   = "happiness"
	EmotionLove        = "love"
	EmotionWisdom      = "wisdom"
	EmotionHope        = "hope"
	EmotionGeneral     = "general"
)

// DefaultAuthor is assigned when a source record carries no author.
const DefaultAuthor = "Unknown"
