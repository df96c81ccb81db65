// Package emotion provides emotion detection for free text: a rule-based
// classifier over a fixed keyword taxonomy, and an optional statistical
// model trained offline on the labeled corpus.
package emotion

import "github.com/wiseai/quote-engine/internal/domain"

// TaxonomyEntry maps an emotion label to its trigger keywords. Entry order is
// the classification priority: the first entry with any keyword present in
// the input wins. Keyword order within an entry is preserved but does not
// affect which label is returned.
type TaxonomyEntry struct {
	Label    string
	Keywords []string
}

// DefaultTaxonomy returns the built-in emotion taxonomy. The tables are
// static configuration; callers must not mutate the returned entries.
func DefaultTaxonomy() []TaxonomyEntry {
	return []TaxonomyEntry{
		{
			Label:    domain.EmotionGrief,
			Keywords: []string{"grief", "loss", "death", "died", "lost", "mourning", "bereavement", "sadness", "pain", "hurt", "broken", "alone", "lonely", "empty"},
		},
		{
			Label:    domain.EmotionDepression,
			Keywords: []string{"depressed", "sad", "hopeless", "despair", "tired", "exhausted", "broken", "hurt", "pain", "suffering", "dark", "empty", "numb"},
		},
		{
			Label:    domain.EmotionAnxiety,
			Keywords: []string{"anxious", "worry", "fear", "scared", "panic", "stress", "overwhelmed", "nervous", "restless"},
		},
		{
			Label:    domain.EmotionMotivation,
			Keywords: []string{"motivated", "motivate", "drive", "energy", "work", "career", "goal", "achieve", "success", "inspire", "dream", "aspire"},
		},
		{
			Label:    domain.EmotionResilience,
			Keywords: []string{"failure", "fail", "challenge", "difficult", "hard", "struggle", "overcome", "persevere", "tough", "strength", "courage"},
		},
		{
			Label:    domain.EmotionMindfulness,
			Keywords: []string{"mind", "think", "thought", "calm", "peace", "meditation", "present", "breathe", "breath"},
		},
		{
			Label:    domain.EmotionHappiness,
			Keywords: []string{"happy", "happiness", "joy", "cheer", "bright", "smile", "laugh", "delight", "pleasure"},
		},
		{
			Label:    domain.EmotionLove,
			Keywords: []string{"love", "heart", "relationship", "romance", "affection", "care", "cherish", "adore"},
		},
		{
			Label:    domain.EmotionWisdom,
			Keywords: []string{"wisdom", "learn", "knowledge", "experience", "understand", "insight", "truth", "philosophy"},
		},
		{
			Label:    domain.EmotionHope,
			Keywords: []string{"hope", "faith", "believe", "trust", "optimism", "positive", "future", "better", "light", "heal"},
		},
	}
}

// Labels returns the taxonomy labels in declaration order, without the
// general sentinel.
func Labels(taxonomy []TaxonomyEntry) []string {
	labels := make([]string, len(taxonomy))
	for i, e := range taxonomy {
		labels[i] = e.Label
	}
	return labels
}
