package emotion

import (
	"encoding/gob"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/wiseai/quote-engine/internal/domain"
)

// Model is the optional statistical classifier: a TF-IDF vectorizer paired
// with one unit-length centroid per emotion label. Prediction scores the
// input vector against every centroid by cosine similarity and returns the
// arg-max label plus the normalized score distribution.
//
// A Model is fitted offline by cmd/trainer and loaded read-only by the
// serving process. Absence of the artifact is not an error; callers fall
// back to the rule classifier.
type Model struct {
	Vocab     map[string]int // term -> vector column
	IDF       []float64      // per column
	Labels    []string       // training label set
	Centroids [][]float64    // per label, unit length
}

// Predict returns the best label and the full probability distribution over
// the model's labels. When nothing in the input hits the vocabulary the
// distribution is all zeros and the label is general; callers should treat
// that as a miss and fall back.
func (m *Model) Predict(text string) (string, map[string]float64) {
	dist := make(map[string]float64, len(m.Labels))
	vec := m.vectorize(text)
	if len(vec) == 0 {
		for _, label := range m.Labels {
			dist[label] = 0
		}
		return domain.EmotionGeneral, dist
	}

	best := domain.EmotionGeneral
	bestScore := 0.0
	total := 0.0
	for i, label := range m.Labels {
		score := sparseDot(vec, m.Centroids[i])
		if score < 0 {
			score = 0
		}
		dist[label] = score
		total += score
		if score > bestScore {
			bestScore = score
			best = label
		}
	}
	if total > 0 {
		for label := range dist {
			dist[label] /= total
		}
	}
	return best, dist
}

// Confidence returns the probability of the given label in a distribution
// produced by Predict.
func Confidence(dist map[string]float64, label string) float64 {
	return dist[label]
}

// vectorize produces the L2-normalized sparse TF-IDF vector for text.
func (m *Model) vectorize(text string) map[int]float64 {
	return m.vectorizeTerms(Terms(text))
}

func sparseDot(vec map[int]float64, dense []float64) float64 {
	var sum float64
	for col, w := range vec {
		sum += w * dense[col]
	}
	return sum
}

// Terms tokenizes text into lowercased unigram and bigram terms with English
// stop words removed. Bigram terms join their words with a single space.
func Terms(text string) []string {
	words := tokenize(text)
	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	words := fields[:0]
	for _, w := range fields {
		if !stopWords[w] {
			words = append(words, w)
		}
	}
	return words
}

// Save writes the model artifact with encoding/gob.
func (m *Model) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// LoadModel reads a model artifact written by Save. A missing file surfaces
// as an error satisfying errors.Is(err, fs.ErrNotExist) so callers can fall
// back to rule-based classification without treating it as a failure.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	var m Model
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return &m, nil
}

// stopWords is the English stop word list applied during tokenization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"i": true, "if": true, "in": true, "is": true, "it": true, "its": true,
	"me": true, "my": true, "no": true, "not": true, "of": true, "on": true,
	"or": true, "our": true, "she": true, "so": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true,
	"they": true, "this": true, "to": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "which": true, "who": true,
	"will": true, "with": true, "you": true, "your": true,
}
