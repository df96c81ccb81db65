package corpus

import (
	"context"
	"errors"

	"github.com/wiseai/quote-engine/internal/domain"
)

// MaxCorpusWords is the merge-time word ceiling. It is deliberately looser
// than the 50-word serving threshold: the corpus keeps slightly longer
// quotes so other consumers of the artifact are not constrained by the
// serving policy.
const MaxCorpusWords = 65

// ErrNoSources is returned when no configured source yields any rows;
// that is fatal for the batch run.
var ErrNoSources = errors.New("no sources yielded data")

// Labeler assigns an emotion label to quote text. Satisfied by
// emotion.RuleClassifier.
type Labeler interface {
	Classify(text, tags string) string
}

// Logger defines the logging interface the batch expects.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// BuildConfig controls the merge batch.
type BuildConfig struct {
	MaxWords    int // word ceiling, default MaxCorpusWords
	Concurrency int // labeling workers, default 4
}

// BuildSummary aggregates per-source outcomes and merge statistics.
type BuildSummary struct {
	Sources    []SourceResult
	Loaded     int // rows across all non-skipped sources
	Duplicates int // rows dropped by exact-text dedup
	TooLong    int // rows dropped by the word ceiling
	Total      int // final corpus size
}

// Build runs the offline merge/label batch: load each source (skip with a
// logged reason on failure), deduplicate by exact text with the first
// occurrence winning, drop quotes over the word ceiling, and assign an
// emotion to every survivor.
func Build(ctx context.Context, sources []Source, labeler Labeler, cfg BuildConfig, logger Logger) ([]domain.Quote, *BuildSummary, error) {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = MaxCorpusWords
	}

	summary := &BuildSummary{}
	var rows []Row
	for _, src := range sources {
		srcRows, result := load(src)
		summary.Sources = append(summary.Sources, result)
		if result.Skipped {
			logger.Warn("skipping source", "source", result.Source, "reason", result.Reason)
			continue
		}
		logger.Info("loaded source", "source", result.Source, "rows", result.Loaded)
		summary.Loaded += result.Loaded
		rows = append(rows, srcRows...)
	}
	if len(rows) == 0 {
		return nil, summary, ErrNoSources
	}

	seen := make(map[string]bool, len(rows))
	quotes := make([]domain.Quote, 0, len(rows))
	for _, row := range rows {
		if seen[row.Text] {
			summary.Duplicates++
			continue
		}
		seen[row.Text] = true

		q := domain.Quote{Text: row.Text, Author: row.Author, Tags: row.Tags}
		if q.Author == "" {
			q.Author = domain.DefaultAuthor
		}
		if q.WordCount() > cfg.MaxWords {
			summary.TooLong++
			continue
		}
		quotes = append(quotes, q)
	}

	if err := labelAll(ctx, quotes, labeler, cfg.Concurrency); err != nil {
		return nil, summary, err
	}
	summary.Total = len(quotes)

	logger.Info("corpus built",
		"loaded", summary.Loaded,
		"duplicates", summary.Duplicates,
		"too_long", summary.TooLong,
		"total", summary.Total,
	)
	return quotes, summary, nil
}

// Dedupe removes quotes whose exact text was already seen, first occurrence
// winning. Running it on an already-deduplicated slice is a no-op.
func Dedupe(quotes []domain.Quote) []domain.Quote {
	seen := make(map[string]bool, len(quotes))
	out := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		out = append(out, q)
	}
	return out
}
