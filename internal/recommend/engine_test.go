//nolint:testpackage // Testing internal engine wiring requires same package access
package recommend

import (
	"context"
	"testing"

	"github.com/wiseai/quote-engine/internal/domain"
	"github.com/wiseai/quote-engine/internal/emotion"
	"github.com/wiseai/quote-engine/internal/relevance"
)

// mockLogger implements the Logger interface for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...any) {}
func (m *mockLogger) Info(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Error(msg string, keysAndValues ...any) {}

func testCorpus() []domain.Quote {
	return []domain.Quote{
		{Text: "The death of my mother taught me what love endures", Author: "A", Emotion: domain.EmotionGrief},
		{Text: "Courage is grace under pressure", Author: "B", Emotion: domain.EmotionResilience},
		{Text: "Hope is the thing with feathers", Author: "C", Emotion: domain.EmotionHope},
		{Text: "Tomorrow brings its own light", Author: "D", Emotion: domain.EmotionHope},
		{Text: "A plain observation about life", Author: "E", Emotion: domain.EmotionGeneral},
	}
}

func newTestEngine(model *emotion.Model, quotes []domain.Quote) *Engine {
	return NewEngine(
		emotion.NewRuleClassifier(emotion.DefaultTaxonomy()),
		model,
		relevance.NewFilter(relevance.DefaultRules()),
		NewSelector(DefaultMaxWords, 42),
		quotes,
		&mockLogger{},
		nil,
	)
}

func TestEngine_RecommendRuleBased(t *testing.T) {
	engine := newTestEngine(nil, testCorpus())

	result := engine.Recommend(context.Background(), "I am full of hope for the future", 5)

	if result.Emotion != domain.EmotionHope {
		t.Fatalf("expected %s, got %s", domain.EmotionHope, result.Emotion)
	}
	if result.Method != MethodRuleBased {
		t.Errorf("expected method %s, got %s", MethodRuleBased, result.Method)
	}
	if result.Confidence != ruleConfidence {
		t.Errorf("expected confidence %f, got %f", ruleConfidence, result.Confidence)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected both hope quotes, got %d", len(result.Recommendations))
	}
	for _, rec := range result.Recommendations {
		if rec.Emotion != domain.EmotionHope {
			t.Errorf("recommendation labeled %s, want %s", rec.Emotion, domain.EmotionHope)
		}
		if rec.MatchType != domain.MatchEmotionBased {
			t.Errorf("expected match type %s, got %s", domain.MatchEmotionBased, rec.MatchType)
		}
	}
}

func TestEngine_RecommendFallbackToGeneral(t *testing.T) {
	engine := newTestEngine(nil, testCorpus())

	// Wisdom classifies but has no corpus subset; the general quote serves.
	result := engine.Recommend(context.Background(), "share some wisdom with me", 5)

	if result.Emotion != domain.EmotionWisdom {
		t.Fatalf("expected %s, got %s", domain.EmotionWisdom, result.Emotion)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected the general quote, got %d recommendations", len(result.Recommendations))
	}
	if result.Recommendations[0].MatchType != domain.MatchFallback {
		t.Errorf("expected match type %s, got %s", domain.MatchFallback, result.Recommendations[0].MatchType)
	}
}

func TestEngine_RecommendEmptyResultIsValid(t *testing.T) {
	// No general quotes to fall back to and no happiness subset.
	corpus := []domain.Quote{
		{Text: "Hope is the thing with feathers", Author: "C", Emotion: domain.EmotionHope},
	}
	engine := newTestEngine(nil, corpus)

	result := engine.Recommend(context.Background(), "I feel so happy and joyful", 5)

	if result.Emotion != domain.EmotionHappiness {
		t.Fatalf("expected %s, got %s", domain.EmotionHappiness, result.Emotion)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected empty recommendations, got %d", len(result.Recommendations))
	}
}

func TestEngine_StatisticalPathPreferred(t *testing.T) {
	training := []domain.Quote{
		{Text: "mourning death and loss of a loved heart", Emotion: domain.EmotionGrief},
		{Text: "death loss and mourning shape the heart", Emotion: domain.EmotionGrief},
		{Text: "joy laughter and a happy smile every day", Emotion: domain.EmotionHappiness},
		{Text: "a happy smile brings joy and laughter", Emotion: domain.EmotionHappiness},
	}
	model, err := emotion.Train(training, emotion.TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	engine := newTestEngine(model, testCorpus())
	result := engine.Recommend(context.Background(), "mourning a terrible loss", 5)

	if result.Method != MethodStatistical {
		t.Fatalf("expected method %s, got %s", MethodStatistical, result.Method)
	}
	if result.Emotion != domain.EmotionGrief {
		t.Errorf("expected %s, got %s", domain.EmotionGrief, result.Emotion)
	}
	if result.Confidence != result.Probabilities[domain.EmotionGrief] {
		t.Errorf("confidence should equal the winning probability")
	}
	for _, rec := range result.Recommendations {
		if rec.MatchType != domain.MatchSimilarityBased {
			t.Errorf("expected match type %s, got %s", domain.MatchSimilarityBased, rec.MatchType)
		}
	}
}

func TestEngine_StatisticalMissFallsBackToRules(t *testing.T) {
	training := []domain.Quote{
		{Text: "mourning death and loss of a loved heart", Emotion: domain.EmotionGrief},
		{Text: "death loss and mourning shape the heart", Emotion: domain.EmotionGrief},
	}
	model, err := emotion.Train(training, emotion.TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	engine := newTestEngine(model, testCorpus())
	// Nothing in the input hits the model vocabulary, but "hope" is a rule
	// keyword.
	result := engine.Recommend(context.Background(), "hope springs eternal", 5)

	if result.Method != MethodRuleBased {
		t.Fatalf("expected rule fallback, got method %s", result.Method)
	}
	if result.Emotion != domain.EmotionHope {
		t.Errorf("expected %s, got %s", domain.EmotionHope, result.Emotion)
	}
}

func TestEngine_Accessors(t *testing.T) {
	engine := newTestEngine(nil, testCorpus())

	if !engine.Loaded() {
		t.Error("expected corpus to be loaded")
	}
	if engine.ModelLoaded() {
		t.Error("no model was provided")
	}
	if engine.TotalQuotes() != 5 {
		t.Errorf("expected 5 quotes, got %d", engine.TotalQuotes())
	}

	labels := engine.EmotionLabels()
	if len(labels) != 10 {
		t.Errorf("expected the 10 taxonomy labels, got %d", len(labels))
	}

	counts := engine.EmotionCounts()
	if counts[domain.EmotionHope] != 2 {
		t.Errorf("expected 2 hope quotes, got %d", counts[domain.EmotionHope])
	}

	sample := engine.SampleQuotes(3)
	if len(sample) != 3 {
		t.Errorf("expected 3 sampled quotes, got %d", len(sample))
	}
}

func TestEngine_EmptyCorpus(t *testing.T) {
	engine := newTestEngine(nil, nil)

	if engine.Loaded() {
		t.Error("empty corpus must not report loaded")
	}

	result := engine.Recommend(context.Background(), "anything", 5)
	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations from an empty corpus, got %d", len(result.Recommendations))
	}
}
