// Package recommend turns a classified emotion into a quote selection:
// corpus subset, relevance narrowing, length filter, and sampling.
package recommend

import (
	"math/rand"
	"sync"

	"github.com/wiseai/quote-engine/internal/domain"
)

// Serving-side selection defaults.
const (
	DefaultMaxWords = 50 // serving length threshold, inclusive
	DefaultK        = 5
)

// Selector applies the serving length filter and draws a uniform sample
// without replacement. The random source is seeded at construction so
// selections are reproducible under a fixed seed; a mutex guards the
// source because requests are served concurrently.
type Selector struct {
	maxWords int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a selector with the given word threshold and seed.
// maxWords <= 0 selects the default threshold.
func NewSelector(maxWords int, seed int64) *Selector {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Selector{
		maxWords: maxWords,
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// FilterLength drops quotes longer than the word threshold. A quote with
// exactly the threshold word count is retained.
func (s *Selector) FilterLength(quotes []domain.Quote) []domain.Quote {
	out := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.WordCount() <= s.maxWords {
			out = append(out, q)
		}
	}
	return out
}

// Sample returns all candidates in received order when there are at most k,
// otherwise exactly k distinct candidates drawn uniformly. There is no
// weighting by confidence, relevance or recency.
func (s *Selector) Sample(quotes []domain.Quote, k int) []domain.Quote {
	if k <= 0 {
		k = DefaultK
	}
	if len(quotes) <= k {
		out := make([]domain.Quote, len(quotes))
		copy(out, quotes)
		return out
	}

	s.mu.Lock()
	perm := s.rnd.Perm(len(quotes))
	s.mu.Unlock()

	out := make([]domain.Quote, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, quotes[idx])
	}
	return out
}
