package main

import (
	"context"
	"flag"
	"os"

	"github.com/wiseai/quote-engine/internal/config"
	"github.com/wiseai/quote-engine/internal/corpus"
	"github.com/wiseai/quote-engine/internal/emotion"
	"github.com/wiseai/quote-engine/internal/logging"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, flush, err := logging.New(cfg.Logging.Level, cfg.Service.Debug)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer flush()

	sources := cfg.Corpus.Sources
	if len(sources) == 0 {
		sources = corpus.DefaultSources(cfg.Corpus.SourceDir)
	}
	logger.Info("building corpus",
		"sources", len(sources),
		"max_words", cfg.Corpus.MaxWords,
		"db_path", cfg.Corpus.DBPath)

	ctx := context.Background()
	labeler := emotion.NewRuleClassifier(emotion.DefaultTaxonomy())

	quotes, summary, err := corpus.Build(ctx, sources, labeler, corpus.BuildConfig{
		MaxWords:    cfg.Corpus.MaxWords,
		Concurrency: cfg.Corpus.Concurrency,
	}, logger)
	if err != nil {
		logger.Error("corpus build failed", "error", err)
		os.Exit(1)
	}

	store, err := corpus.Open(cfg.Corpus.DBPath)
	if err != nil {
		logger.Error("failed to open corpus store", "path", cfg.Corpus.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Rebuild(ctx, quotes); err != nil {
		logger.Error("failed to persist corpus", "error", err)
		os.Exit(1)
	}

	for _, src := range summary.Sources {
		if src.Skipped {
			logger.Warn("source skipped", "source", src.Source, "reason", src.Reason)
		}
	}
	logger.Info("corpus persisted",
		"total", summary.Total,
		"duplicates_dropped", summary.Duplicates,
		"too_long_dropped", summary.TooLong)
}
