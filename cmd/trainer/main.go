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

	store, err := corpus.Open(cfg.Corpus.DBPath)
	if err != nil {
		logger.Error("failed to open corpus store", "path", cfg.Corpus.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	quotes, err := store.LoadAll(context.Background())
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(1)
	}

	counts := emotion.TrainingCounts(quotes)
	for label, n := range counts {
		logger.Debug("training class", "emotion", label, "examples", n)
	}
	logger.Info("training model", "quotes", len(quotes), "classes", len(counts))

	model, err := emotion.Train(quotes, emotion.DefaultTrainConfig())
	if err != nil {
		logger.Error("training failed", "error", err)
		os.Exit(1)
	}

	if err := model.Save(cfg.Model.Path); err != nil {
		logger.Error("failed to save model artifact", "path", cfg.Model.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("model artifact saved",
		"path", cfg.Model.Path,
		"vocabulary", len(model.Vocab),
		"classes", len(model.Labels))
}
