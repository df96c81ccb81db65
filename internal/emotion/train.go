package emotion

import (
	"errors"
	"math"
	"sort"

	"github.com/wiseai/quote-engine/internal/domain"
)

// TrainConfig controls vectorizer fitting.
type TrainConfig struct {
	MaxFeatures int // vocabulary cap, most frequent terms kept
	MinDocFreq  int // terms in fewer documents are dropped
}

// DefaultTrainConfig mirrors the offline training defaults.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{MaxFeatures: 5000, MinDocFreq: 2}
}

// ErrNoTrainingData is returned when the corpus holds no usable quotes.
var ErrNoTrainingData = errors.New("no training data")

// Train fits a TF-IDF vectorizer and per-emotion centroids on the labeled
// corpus. Quotes with an empty text or label are skipped.
func Train(quotes []domain.Quote, cfg TrainConfig) (*Model, error) {
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = DefaultTrainConfig().MaxFeatures
	}
	if cfg.MinDocFreq <= 0 {
		cfg.MinDocFreq = 1
	}

	type doc struct {
		label string
		terms []string
	}
	docs := make([]doc, 0, len(quotes))
	df := make(map[string]int)
	for _, q := range quotes {
		if q.Text == "" || q.Emotion == "" {
			continue
		}
		terms := Terms(q.Text)
		if len(terms) == 0 {
			continue
		}
		docs = append(docs, doc{label: q.Emotion, terms: terms})
		inDoc := make(map[string]bool, len(terms))
		for _, t := range terms {
			inDoc[t] = true
		}
		for t := range inDoc {
			df[t]++
		}
	}
	if len(docs) == 0 {
		return nil, ErrNoTrainingData
	}

	// Vocabulary: min-df filter, then most frequent terms up to the cap.
	type termFreq struct {
		term string
		df   int
	}
	candidates := make([]termFreq, 0, len(df))
	for t, n := range df {
		if n >= cfg.MinDocFreq {
			candidates = append(candidates, termFreq{term: t, df: n})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].df != candidates[j].df {
			return candidates[i].df > candidates[j].df
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > cfg.MaxFeatures {
		candidates = candidates[:cfg.MaxFeatures]
	}
	if len(candidates) == 0 {
		return nil, ErrNoTrainingData
	}

	m := &Model{
		Vocab: make(map[string]int, len(candidates)),
		IDF:   make([]float64, len(candidates)),
	}
	n := float64(len(docs))
	for col, c := range candidates {
		m.Vocab[c.term] = col
		// Smoothed IDF, never zero so every vocabulary term contributes.
		m.IDF[col] = math.Log((1+n)/(1+float64(c.df))) + 1
	}

	// Accumulate normalized document vectors into per-label sums.
	sums := make(map[string][]float64)
	counts := make(map[string]int)
	for _, d := range docs {
		vec := m.vectorizeTerms(d.terms)
		if len(vec) == 0 {
			continue
		}
		sum, ok := sums[d.label]
		if !ok {
			sum = make([]float64, len(m.IDF))
			sums[d.label] = sum
		}
		for col, w := range vec {
			sum[col] += w
		}
		counts[d.label]++
	}

	m.Labels = make([]string, 0, len(sums))
	for label := range sums {
		m.Labels = append(m.Labels, label)
	}
	sort.Strings(m.Labels)

	m.Centroids = make([][]float64, len(m.Labels))
	for i, label := range m.Labels {
		centroid := sums[label]
		var norm float64
		for _, w := range centroid {
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for col := range centroid {
				centroid[col] /= norm
			}
		}
		m.Centroids[i] = centroid
	}
	return m, nil
}

// TrainingCounts reports the number of documents per label seen by Train.
func TrainingCounts(quotes []domain.Quote) map[string]int {
	counts := make(map[string]int)
	for _, q := range quotes {
		if q.Text == "" || q.Emotion == "" {
			continue
		}
		counts[q.Emotion]++
	}
	return counts
}

// vectorizeTerms is vectorize over an already-tokenized term list.
func (m *Model) vectorizeTerms(terms []string) map[int]float64 {
	counts := make(map[int]int)
	for _, term := range terms {
		if col, ok := m.Vocab[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	vec := make(map[int]float64, len(counts))
	var norm float64
	for col, tf := range counts {
		w := float64(tf) * m.IDF[col]
		vec[col] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for col := range vec {
		vec[col] /= norm
	}
	return vec
}
