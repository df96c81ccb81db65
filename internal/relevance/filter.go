package relevance

import (
	"strings"

	"github.com/wiseai/quote-engine/internal/domain"
)

// Filter applies the per-emotion relevance rules and the cross-cutting
// context overrides. It is immutable after construction and safe for
// concurrent use.
type Filter struct {
	rules map[string]Rule
}

// NewFilter builds a filter over the given rule set. Pass DefaultRules()
// for the built-in configuration.
func NewFilter(rules map[string]Rule) *Filter {
	return &Filter{rules: rules}
}

// Result carries the narrowed subset plus how it was produced.
type Result struct {
	Quotes       []domain.Quote
	UsedFallback bool // general corpus served because the emotion subset was empty
}

// Apply narrows quotes for the classified emotion, honoring the breakup
// override on love and the burnout/study restriction on any emotion.
// An empty result is a valid outcome, not an error.
func (f *Filter) Apply(quotes []domain.Quote, emotion, rawInput string) Result {
	res := Result{Quotes: byEmotion(quotes, emotion)}
	if len(res.Quotes) == 0 && !strings.EqualFold(emotion, domain.EmotionGeneral) {
		res.Quotes = byEmotion(quotes, domain.EmotionGeneral)
		res.UsedFallback = true
	}

	input := strings.ToLower(rawInput)

	if rule, ok := f.rules[strings.ToLower(emotion)]; ok {
		if rule.Emotion == domain.EmotionLove && containsAny(input, breakupContextKeywords) {
			res.Quotes = applyBreakup(res.Quotes)
		} else {
			res.Quotes = applyRule(res.Quotes, rule)
		}
	}

	// The burnout/study restriction is independent of the emotion branch.
	if containsAny(input, burnoutContextKeywords) {
		res.Quotes = applyRule(res.Quotes, burnoutRule)
	}
	return res
}

// byEmotion selects quotes whose stored label equals emotion,
// case-insensitively.
func byEmotion(quotes []domain.Quote, emotion string) []domain.Quote {
	var out []domain.Quote
	for _, q := range quotes {
		if strings.EqualFold(q.Emotion, emotion) {
			out = append(out, q)
		}
	}
	return out
}

// applyRule keeps quotes containing at least one primary and one secondary
// keyword.
func applyRule(quotes []domain.Quote, rule Rule) []domain.Quote {
	var out []domain.Quote
	for _, q := range quotes {
		text := strings.ToLower(q.Text)
		if containsAny(text, rule.Primary) && containsAny(text, rule.Secondary) {
			out = append(out, q)
		}
	}
	return out
}

// applyBreakup applies the breakup rule, relaxing to a single-keyword match
// when the strict rule would return nothing.
func applyBreakup(quotes []domain.Quote) []domain.Quote {
	strict := applyRule(quotes, breakupRule)
	if len(strict) > 0 {
		return strict
	}
	var out []domain.Quote
	for _, q := range quotes {
		if containsAny(strings.ToLower(q.Text), breakupRelaxedKeywords) {
			out = append(out, q)
		}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
