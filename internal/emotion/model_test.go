//nolint:testpackage // Testing internal vectorizer state requires same package access
package emotion

import (
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"testing"

	"github.com/wiseai/quote-engine/internal/domain"
)

func trainingQuotes() []domain.Quote {
	return []domain.Quote{
		{Text: "death and loss leave the heart in mourning", Emotion: domain.EmotionGrief},
		{Text: "mourning the death of someone you loved deeply", Emotion: domain.EmotionGrief},
		{Text: "loss teaches the heart what mourning means", Emotion: domain.EmotionGrief},
		{Text: "joy and laughter fill a happy life", Emotion: domain.EmotionHappiness},
		{Text: "a happy heart finds joy in simple laughter", Emotion: domain.EmotionHappiness},
		{Text: "laughter is the sound of a happy life", Emotion: domain.EmotionHappiness},
	}
}

func TestTrain_PredictSeparatesClasses(t *testing.T) {
	model, err := Train(trainingQuotes(), TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(model.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %v", model.Labels)
	}
	// Labels are sorted.
	if model.Labels[0] != domain.EmotionGrief || model.Labels[1] != domain.EmotionHappiness {
		t.Fatalf("unexpected label order: %v", model.Labels)
	}

	label, dist := model.Predict("mourning a painful loss")
	if label != domain.EmotionGrief {
		t.Errorf("expected %s, got %s (dist %v)", domain.EmotionGrief, label, dist)
	}
	if dist[domain.EmotionGrief] <= dist[domain.EmotionHappiness] {
		t.Errorf("grief score should dominate: %v", dist)
	}

	var total float64
	for _, p := range dist {
		total += p
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("distribution should sum to 1, got %f", total)
	}
}

func TestTrain_PredictVocabularyMiss(t *testing.T) {
	model, err := Train(trainingQuotes(), TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	label, dist := model.Predict("zyxwvut qwerty")
	if label != domain.EmotionGeneral {
		t.Errorf("expected %s on vocabulary miss, got %s", domain.EmotionGeneral, label)
	}
	for emotion, p := range dist {
		if p != 0 {
			t.Errorf("expected zero probability for %s, got %f", emotion, p)
		}
	}
}

func TestTrain_NoData(t *testing.T) {
	if _, err := Train(nil, DefaultTrainConfig()); !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("expected ErrNoTrainingData, got %v", err)
	}

	unlabeled := []domain.Quote{{Text: "some text", Emotion: ""}}
	if _, err := Train(unlabeled, DefaultTrainConfig()); !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("expected ErrNoTrainingData for unlabeled corpus, got %v", err)
	}
}

func TestTrain_MinDocFreqDropsRareTerms(t *testing.T) {
	model, err := Train(trainingQuotes(), TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "deeply" appears in one document only.
	if _, ok := model.Vocab["deeply"]; ok {
		t.Error("term below min document frequency should not be in the vocabulary")
	}
	if _, ok := model.Vocab["mourning"]; !ok {
		t.Error("expected frequent term in the vocabulary")
	}
}

func TestModel_SaveLoadRoundTrip(t *testing.T) {
	model, err := Train(trainingQuotes(), TrainConfig{MaxFeatures: 100, MinDocFreq: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.gob")
	if err := model.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadModel(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	wantLabel, wantDist := model.Predict("mourning a painful loss")
	gotLabel, gotDist := loaded.Predict("mourning a painful loss")
	if gotLabel != wantLabel {
		t.Errorf("loaded model predicted %s, want %s", gotLabel, wantLabel)
	}
	for label, want := range wantDist {
		if math.Abs(gotDist[label]-want) > 1e-12 {
			t.Errorf("probability drift for %s: got %f, want %f", label, gotDist[label], want)
		}
	}
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.gob"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestTerms_UnigramsAndBigrams(t *testing.T) {
	terms := Terms("The calm mind sees clearly")
	want := []string{"calm", "mind", "sees", "clearly", "calm mind", "mind sees", "sees clearly"}

	if len(terms) != len(want) {
		t.Fatalf("got %v, want %v", terms, want)
	}
	for i, term := range want {
		if terms[i] != term {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], term)
		}
	}
}
