package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wiseai/quote-engine/internal/api"
	"github.com/wiseai/quote-engine/internal/config"
	"github.com/wiseai/quote-engine/internal/corpus"
	"github.com/wiseai/quote-engine/internal/emotion"
	"github.com/wiseai/quote-engine/internal/logging"
	"github.com/wiseai/quote-engine/internal/recommend"
	"github.com/wiseai/quote-engine/internal/relevance"
	"github.com/wiseai/quote-engine/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

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

	logger.Info("starting quote engine",
		"port", cfg.Service.Port,
		"debug", cfg.Service.Debug,
		"corpus_db", cfg.Corpus.DBPath)

	ctx := context.Background()

	store, err := corpus.Open(cfg.Corpus.DBPath)
	if err != nil {
		logger.Error("failed to open corpus store", "path", cfg.Corpus.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	quotes, err := store.LoadAll(ctx)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(1)
	}
	if len(quotes) == 0 {
		logger.Warn("corpus is empty, run the corpus builder first", "path", cfg.Corpus.DBPath)
	} else {
		logger.Info("corpus loaded", "quotes", len(quotes))
	}

	model, err := emotion.LoadModel(cfg.Model.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("no model artifact found, serving with rule-based classification only",
				"path", cfg.Model.Path)
		} else {
			logger.Error("failed to load model artifact", "path", cfg.Model.Path, "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("model artifact loaded", "path", cfg.Model.Path, "classes", len(model.Labels))
	}

	tp := telemetry.NewProvider()

	engine := recommend.NewEngine(
		emotion.NewRuleClassifier(emotion.DefaultTaxonomy()),
		model,
		relevance.NewFilter(relevance.DefaultRules()),
		recommend.NewSelector(cfg.Service.MaxQuoteWords, cfg.Service.SampleSeed),
		quotes,
		logger,
		tp,
	)

	handler := api.NewHandler(engine, cfg.Service.ResultCount, logger)
	server := api.NewServer(&cfg.Service, handler, tp, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", "error", err)
		os.Exit(1)
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	}
}
