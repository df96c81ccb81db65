// Package relevance narrows an emotion-matched quote subset to contextually
// relevant items. Single-keyword emotion matching over-generates — a quote
// mentioning "love" is not necessarily about heartbreak — so sensitive
// categories require a quote to satisfy a two-keyword AND rule, trading
// recall for precision.
package relevance

import "github.com/wiseai/quote-engine/internal/domain"

// Rule is a two-keyword-set AND predicate: a quote passes iff its text
// contains at least one primary and at least one secondary keyword.
type Rule struct {
	Emotion   string
	Primary   []string
	Secondary []string
}

// DefaultRules returns the per-emotion relevance rules. Emotions without an
// entry (wisdom, hope, general) are served unfiltered.
func DefaultRules() map[string]Rule {
	rules := []Rule{
		{
			Emotion:   domain.EmotionGrief,
			Primary:   []string{"death", "died", "die", "dying", "loss", "lost", "grave", "mourn", "funeral", "gone"},
			Secondary: []string{"mother", "father", "mom", "dad", "parent", "friend", "family", "brother", "sister", "wife", "husband", "child", "son", "daughter", "love", "loved"},
		},
		{
			Emotion:   domain.EmotionLove,
			Primary:   []string{"love", "heart", "romance"},
			Secondary: []string{"relationship", "together", "forever", "soul", "care", "cherish", "beloved", "affection", "kindness"},
		},
		{
			Emotion:   domain.EmotionAnxiety,
			Primary:   []string{"fear", "worry", "anxious", "afraid", "panic"},
			Secondary: []string{"calm", "courage", "peace", "mind", "overcome", "breathe", "face", "present"},
		},
		{
			Emotion:   domain.EmotionDepression,
			Primary:   []string{"dark", "darkness", "despair", "hopeless", "sad", "sorrow"},
			Secondary: []string{"light", "hope", "strength", "rise", "morning", "dawn", "overcome", "heal"},
		},
		{
			Emotion:   domain.EmotionHappiness,
			Primary:   []string{"happy", "happiness", "joy"},
			Secondary: []string{"life", "moment", "smile", "heart", "mind", "within", "simple"},
		},
		{
			Emotion:   domain.EmotionMotivation,
			Primary:   []string{"success", "goal", "dream", "achieve", "work"},
			Secondary: []string{"effort", "action", "begin", "start", "persist", "courage", "will", "today"},
		},
		{
			// Resilience is the failure-and-growth rule: the quote must
			// speak to failing and to coming back from it.
			Emotion:   domain.EmotionResilience,
			Primary:   []string{"fail", "failure", "fall", "defeat", "mistake"},
			Secondary: []string{"rise", "learn", "grow", "growth", "stronger", "again", "success", "try"},
		},
		{
			// Mindfulness maps to the loneliness-and-sadness rule: quotes
			// about sitting with difficult feelings rather than generic
			// calm-mind aphorisms.
			Emotion:   domain.EmotionMindfulness,
			Primary:   []string{"alone", "lonely", "solitude", "loneliness"},
			Secondary: []string{"sad", "sadness", "peace", "sorrow", "silence", "stillness", "quiet"},
		},
	}

	byEmotion := make(map[string]Rule, len(rules))
	for _, r := range rules {
		byEmotion[r.Emotion] = r
	}
	return byEmotion
}

// breakupContextKeywords detect a breakup context in the raw user input.
var breakupContextKeywords = []string{
	"breakup", "break up", "broke up", "heartbreak", "heartbroken",
	"dumped", "ex-", "my ex", "divorce", "separated",
}

// breakupRule replaces the generic love rule when the user input carries a
// breakup context.
var breakupRule = Rule{
	Emotion:   domain.EmotionLove,
	Primary:   []string{"love", "heart", "relationship"},
	Secondary: []string{"broken", "lost", "pain", "goodbye", "heal", "let go", "move on", "time"},
}

// breakupRelaxedKeywords are the single-condition fallback when the breakup
// rule empties the subset: any one of these in the quote is enough.
var breakupRelaxedKeywords = []string{
	"broken", "goodbye", "heal", "let go", "move on", "heartbreak", "lost love",
}

// burnoutContextKeywords detect a burnout or study context in the raw user
// input, independent of which emotion was classified.
var burnoutContextKeywords = []string{
	"burnout", "burn out", "burned out", "burnt out",
	"exam", "exams", "homework", "assignment", "thesis", "grades",
	"study", "studying", "college", "university", "school",
}

// burnoutRule restricts a subset to quotes speaking to both exhaustion and
// work or learning.
var burnoutRule = Rule{
	Primary:   []string{"tired", "exhausted", "rest", "burnout", "overwhelmed", "weary", "pause"},
	Secondary: []string{"work", "learn", "learning", "study", "effort", "knowledge", "practice", "discipline"},
}
