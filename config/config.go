package config

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/ygrebnov/inquire/errors"
	"github.com/ygrebnov/inquire/patterns"
)

// Config holds environment driven settings for building rule registries.
type Config struct {
	// PatternsFile is a YAML, TOML or JSON pattern table merged over the defaults.
	PatternsFile string `env:"INQUIRE_PATTERNS_FILE"`
	// LogLevel is a zap level name.
	LogLevel string `env:"INQUIRE_LOG_LEVEL" envDefault:"info"`
	// StrictPatterns compiles every pattern when a registry is built.
	StrictPatterns bool `env:"INQUIRE_STRICT_PATTERNS" envDefault:"false"`
}

var dotenvOnce sync.Once

// Load parses Config from the environment. A .env file in the working
// directory is read first, if present; variables already set win.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errorc.With(
			errors.ErrLoadConfig,
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return cfg, nil
}

// Patterns returns the default pattern table, overridden by cfg.PatternsFile
// when it is set.
func Patterns(cfg Config, logger *zap.Logger) (patterns.Table, error) {
	defaults := patterns.Default()
	if cfg.PatternsFile == "" {
		return defaults, nil
	}
	loaded, err := patterns.Load(cfg.PatternsFile, patterns.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return defaults.Merge(loaded), nil
}

// NewLogger builds a production zap logger at cfg.LogLevel.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, errorc.With(
			errors.ErrLoadConfig,
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
