package emotion

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/wiseai/quote-engine/internal/domain"
)

// RuleClassifier assigns an emotion label by substring keyword matching.
// Classification is strictly first-match-wins: the taxonomy is scanned in
// declaration order and the first entry with a keyword present in the input
// wins, with no scoring or ranking among later matches.
//
// All taxonomy keywords are compiled into a single Aho-Corasick automaton so
// a classification is one pass over the input. The automaton reports matched
// keywords by dictionary index; because keywords are inserted in taxonomy
// order, the smallest matched index identifies the winning entry.
type RuleClassifier struct {
	matcher  *ahocorasick.Matcher
	keywords []string // all keywords, taxonomy order
	kwLabels []string // label owning keywords[i]
	labels   []string // taxonomy labels, declaration order
}

// NewRuleClassifier builds the automaton from the given taxonomy.
func NewRuleClassifier(taxonomy []TaxonomyEntry) *RuleClassifier {
	c := &RuleClassifier{
		labels: Labels(taxonomy),
	}
	// Keywords shared between entries (e.g. "pain" in both grief and
	// depression) keep only their earliest slot so the dictionary index
	// always points at the earliest declared owner.
	seen := make(map[string]bool)
	for _, entry := range taxonomy {
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			c.keywords = append(c.keywords, kw)
			c.kwLabels = append(c.kwLabels, entry.Label)
		}
	}
	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}
	return c
}

// Classify returns the emotion label for the given text, with tags unioned
// into the match input. It never fails: empty input classifies as general.
func (c *RuleClassifier) Classify(text, tags string) string {
	if c.matcher == nil {
		return domain.EmotionGeneral
	}

	input := strings.ToLower(text)
	if tags != "" {
		input += " " + strings.ToLower(tags)
	}
	if input == "" {
		return domain.EmotionGeneral
	}

	// MatchThreadSafe keeps hit de-duplication state on the stack; the
	// plain Match variant mutates matcher-internal counters and must not
	// be shared across goroutines.
	hits := c.matcher.MatchThreadSafe([]byte(input))
	if len(hits) == 0 {
		return domain.EmotionGeneral
	}

	// Smallest dictionary index = earliest declared taxonomy entry.
	first := hits[0]
	for _, h := range hits[1:] {
		if h < first {
			first = h
		}
	}
	if first >= len(c.kwLabels) {
		return domain.EmotionGeneral
	}
	return c.kwLabels[first]
}

// Labels returns the taxonomy labels in declaration order.
func (c *RuleClassifier) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// KeywordCount returns the total number of compiled keywords.
func (c *RuleClassifier) KeywordCount() int {
	return len(c.keywords)
}
