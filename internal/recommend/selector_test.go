//nolint:testpackage // Testing internal selector state requires same package access
package recommend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wiseai/quote-engine/internal/domain"
)

func quoteOfWords(n int) domain.Quote {
	return domain.Quote{Text: strings.TrimSpace(strings.Repeat("word ", n))}
}

func TestSelector_FilterLength(t *testing.T) {
	s := NewSelector(DefaultMaxWords, 42)

	quotes := []domain.Quote{
		quoteOfWords(1),
		quoteOfWords(DefaultMaxWords),     // exactly at the threshold, kept
		quoteOfWords(DefaultMaxWords + 1), // one over, dropped
	}

	kept := s.FilterLength(quotes)
	if len(kept) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(kept))
	}
	for _, q := range kept {
		if q.WordCount() > DefaultMaxWords {
			t.Errorf("over-length quote survived: %d words", q.WordCount())
		}
	}
}

func TestSelector_SampleFewerThanK(t *testing.T) {
	s := NewSelector(DefaultMaxWords, 42)

	quotes := []domain.Quote{
		{Text: "a"}, {Text: "b"}, {Text: "c"},
	}
	got := s.Sample(quotes, 5)

	if len(got) != 3 {
		t.Fatalf("expected all 3 quotes, got %d", len(got))
	}
	// At most k candidates are returned in received order, unshuffled.
	for i, q := range quotes {
		if got[i].Text != q.Text {
			t.Errorf("order changed at %d: got %q, want %q", i, got[i].Text, q.Text)
		}
	}
}

func TestSelector_SampleExactlyKDistinct(t *testing.T) {
	s := NewSelector(DefaultMaxWords, 42)

	quotes := make([]domain.Quote, 20)
	for i := range quotes {
		quotes[i] = domain.Quote{Text: fmt.Sprintf("quote-%d", i)}
	}

	got := s.Sample(quotes, 5)
	if len(got) != 5 {
		t.Fatalf("expected exactly 5 quotes, got %d", len(got))
	}
	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.Text] {
			t.Errorf("duplicate draw: %q", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestSelector_SeedDeterminism(t *testing.T) {
	quotes := make([]domain.Quote, 50)
	for i := range quotes {
		quotes[i] = domain.Quote{Text: fmt.Sprintf("quote-%d", i)}
	}

	a := NewSelector(DefaultMaxWords, 42).Sample(quotes, 5)
	b := NewSelector(DefaultMaxWords, 42).Sample(quotes, 5)

	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("same seed must draw the same sample: %v vs %v", a, b)
		}
	}
}

func TestSelector_SampleDoesNotMutateInput(t *testing.T) {
	s := NewSelector(DefaultMaxWords, 7)

	quotes := make([]domain.Quote, 10)
	for i := range quotes {
		quotes[i] = domain.Quote{Text: fmt.Sprintf("quote-%d", i)}
	}

	_ = s.Sample(quotes, 3)
	for i := range quotes {
		if quotes[i].Text != fmt.Sprintf("quote-%d", i) {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}
