// Package config loads service configuration from a YAML file with
// environment variable overrides. A .env or .env.local file next to the
// binary is loaded first, so local development does not need exported
// variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wiseai/quote-engine/internal/corpus"
)

// Default configuration values.
const (
	defaultServiceName  = "quote-engine"
	defaultPort         = 8080
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
	defaultRateLimitRPS = 50
	defaultResultCount  = 5
	defaultMaxWords     = 50
	defaultSampleSeed   = 42
	defaultCorpusDB     = "data/corpus.db"
	defaultCorpusWords  = 65
	defaultConcurrency  = 4
	defaultModelPath    = "models/emotion_model.gob"
	defaultLogLevel     = "info"
)

// Config holds all configuration for the quote engine.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Model   ModelConfig   `yaml:"model"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds HTTP serving configuration.
type ServiceConfig struct {
	Name           string        `yaml:"name"`
	Port           int           `env:"QUOTE_ENGINE_PORT" yaml:"port"`
	Debug          bool          `env:"APP_DEBUG"         yaml:"debug"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS" yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	ResultCount    int           `yaml:"result_count"`
	MaxQuoteWords  int           `yaml:"max_quote_words"`
	SampleSeed     int64         `yaml:"sample_seed"`
}

// CorpusConfig holds corpus storage and batch configuration.
type CorpusConfig struct {
	DBPath      string          `env:"CORPUS_DB_PATH" yaml:"db_path"`
	SourceDir   string          `env:"CORPUS_SOURCE_DIR" yaml:"source_dir"`
	Sources     []corpus.Source `yaml:"sources"`
	MaxWords    int             `yaml:"max_words"`
	Concurrency int             `env:"CORPUS_CONCURRENCY" yaml:"concurrency"`
}

// ModelConfig holds the statistical classifier artifact location.
type ModelConfig struct {
	Path string `env:"MODEL_PATH" yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// Load reads the YAML file at path, fills defaults, and applies environment
// variable overrides declared through `env` struct tags. Env always wins.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()
	applyEnvOverrides(reflect.ValueOf(&cfg).Elem())
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultPort
	}
	if c.Service.ReadTimeout == 0 {
		c.Service.ReadTimeout = defaultReadTimeout
	}
	if c.Service.WriteTimeout == 0 {
		c.Service.WriteTimeout = defaultWriteTimeout
	}
	if c.Service.IdleTimeout == 0 {
		c.Service.IdleTimeout = defaultIdleTimeout
	}
	if c.Service.RateLimitRPS == 0 {
		c.Service.RateLimitRPS = defaultRateLimitRPS
	}
	if c.Service.RateLimitBurst == 0 {
		c.Service.RateLimitBurst = c.Service.RateLimitRPS
	}
	if c.Service.ResultCount == 0 {
		c.Service.ResultCount = defaultResultCount
	}
	if c.Service.MaxQuoteWords == 0 {
		c.Service.MaxQuoteWords = defaultMaxWords
	}
	if c.Service.SampleSeed == 0 {
		c.Service.SampleSeed = defaultSampleSeed
	}
	if c.Corpus.DBPath == "" {
		c.Corpus.DBPath = defaultCorpusDB
	}
	if c.Corpus.MaxWords == 0 {
		c.Corpus.MaxWords = defaultCorpusWords
	}
	if c.Corpus.Concurrency == 0 {
		c.Corpus.Concurrency = defaultConcurrency
	}
	if len(c.Corpus.Sources) == 0 && c.Corpus.SourceDir != "" {
		c.Corpus.Sources = corpus.DefaultSources(c.Corpus.SourceDir)
	}
	if c.Model.Path == "" {
		c.Model.Path = defaultModelPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// loadEnvFiles loads .env.local then .env; missing files are fine.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// applyEnvOverrides walks the struct and overwrites fields whose `env` tag
// names a set environment variable.
func applyEnvOverrides(v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			applyEnvOverrides(field)
			continue
		}

		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok || raw == "" {
			continue
		}
		setField(field, raw)
	}
}

func setField(field reflect.Value, raw string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			field.SetBool(b)
		}
	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			if d, err := time.ParseDuration(raw); err == nil {
				field.SetInt(int64(d))
			}
			return
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			field.SetInt(n)
		}
	}
}
