package recommend

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wiseai/quote-engine/internal/domain"
	"github.com/wiseai/quote-engine/internal/emotion"
	"github.com/wiseai/quote-engine/internal/relevance"
	"github.com/wiseai/quote-engine/internal/telemetry"
)

// Classification method labels reported in results and metrics.
const (
	MethodRuleBased   = "rule_based"
	MethodStatistical = "statistical"
)

// ruleConfidence is reported on the rule-based path, which produces a label
// but no distribution.
const ruleConfidence = 0.7

// Logger defines the logging interface the engine expects.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Engine is the request-time recommendation pipeline. The corpus, taxonomy
// and rules it holds are immutable after construction, so a single Engine is
// shared read-only across concurrent requests.
type Engine struct {
	rule      *emotion.RuleClassifier
	model     *emotion.Model // nil when no artifact was loaded
	filter    *relevance.Filter
	selector  *Selector
	quotes    []domain.Quote
	counts    map[string]int
	logger    Logger
	telemetry *telemetry.Provider
}

// NewEngine wires the pipeline. model may be nil; the engine then classifies
// with rules only. telemetry may be nil in tests.
func NewEngine(
	rule *emotion.RuleClassifier,
	model *emotion.Model,
	filter *relevance.Filter,
	selector *Selector,
	quotes []domain.Quote,
	logger Logger,
	tp *telemetry.Provider,
) *Engine {
	counts := make(map[string]int)
	for _, q := range quotes {
		counts[q.Emotion]++
	}
	tp.SetCorpusSize(len(quotes))

	return &Engine{
		rule:      rule,
		model:     model,
		filter:    filter,
		selector:  selector,
		quotes:    quotes,
		counts:    counts,
		logger:    logger,
		telemetry: tp,
	}
}

// Result is the outcome of one recommendation request.
type Result struct {
	Recommendations []domain.Recommendation
	Emotion         string
	Confidence      float64
	Probabilities   map[string]float64
	Method          string
}

// Recommend runs the full pipeline: classify the input, subset the corpus by
// emotion (falling back to general), apply relevance rules and context
// overrides, drop over-length quotes, and sample up to k. An empty
// recommendation list is a valid result.
func (e *Engine) Recommend(ctx context.Context, text string, k int) *Result {
	start := time.Now()
	ctx, span := e.telemetry.StartSpan(ctx, "engine.recommend")
	defer span.End()

	label, probs, method := e.classify(text)
	confidence := ruleConfidence
	if method == MethodStatistical {
		confidence = emotion.Confidence(probs, label)
	}

	filtered := e.filter.Apply(e.quotes, label, text)
	candidates := e.selector.FilterLength(filtered.Quotes)
	selected := e.selector.Sample(candidates, k)

	matchType := domain.MatchEmotionBased
	if method == MethodStatistical {
		matchType = domain.MatchSimilarityBased
	}
	if filtered.UsedFallback {
		matchType = domain.MatchFallback
	}

	recs := make([]domain.Recommendation, 0, len(selected))
	for _, q := range selected {
		recs = append(recs, domain.Recommendation{
			Text:       q.Text,
			Author:     q.Author,
			Emotion:    label,
			Confidence: confidence,
			MatchType:  matchType,
		})
	}

	span.SetAttributes(
		attribute.String("emotion", label),
		attribute.String("method", method),
		attribute.Int("returned", len(recs)),
	)
	e.telemetry.RecordRecommendation(ctx, label, method, len(recs), time.Since(start))
	e.logger.Info("recommendations generated",
		"emotion", label,
		"method", method,
		"candidates", len(candidates),
		"returned", len(recs),
	)

	return &Result{
		Recommendations: recs,
		Emotion:         label,
		Confidence:      confidence,
		Probabilities:   probs,
		Method:          method,
	}
}

// classify prefers the statistical model when one is loaded and it produced
// a usable distribution, falling back to rule-based keyword matching.
func (e *Engine) classify(text string) (string, map[string]float64, string) {
	if e.model != nil {
		label, dist := e.model.Predict(text)
		if dist[label] > 0 {
			return label, dist, MethodStatistical
		}
		e.logger.Debug("model produced no signal, falling back to rules")
	}
	return e.rule.Classify(text, ""), map[string]float64{}, MethodRuleBased
}

// Loaded reports whether a corpus is available.
func (e *Engine) Loaded() bool {
	return len(e.quotes) > 0
}

// ModelLoaded reports whether the statistical classifier is active.
func (e *Engine) ModelLoaded() bool {
	return e.model != nil
}

// TotalQuotes returns the corpus size.
func (e *Engine) TotalQuotes() int {
	return len(e.quotes)
}

// EmotionLabels returns the classification label set: the model's classes
// when a model is loaded, the taxonomy labels otherwise.
func (e *Engine) EmotionLabels() []string {
	if e.model != nil {
		out := make([]string, len(e.model.Labels))
		copy(out, e.model.Labels)
		return out
	}
	return e.rule.Labels()
}

// EmotionCounts returns the number of corpus quotes per stored label.
func (e *Engine) EmotionCounts() map[string]int {
	out := make(map[string]int, len(e.counts))
	for label, n := range e.counts {
		out[label] = n
	}
	return out
}

// SampleQuotes returns up to n length-filtered quotes for corpus browsing.
func (e *Engine) SampleQuotes(n int) []domain.Quote {
	return e.selector.Sample(e.selector.FilterLength(e.quotes), n)
}
