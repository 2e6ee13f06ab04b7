package inquire

import (
	"go.uber.org/zap"

	"github.com/ygrebnov/inquire/config"
	"github.com/ygrebnov/inquire/patterns"
	"github.com/ygrebnov/inquire/validation"
)

// NewRegistry returns a registry seeded with the built-in rules and any
// rules passed with WithRules.
func NewRegistry(opts ...Option) (*Registry, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	builtins := Builtins()
	if o.patterns != nil {
		var err error
		if builtins, err = NewRuleSet(o.patterns); err != nil {
			return nil, err
		}
		if t, ok := o.patterns.(patterns.Table); ok {
			if unused := UnusedPatterns(t); len(unused) > 0 {
				o.logger.Debug("patterns not used by any built-in rule", zap.Strings("names", unused))
			}
		}
	}

	r := &Registry{
		rules:  make(map[string]validation.Rule, len(builtins)+len(o.rules)),
		logger: o.logger,
	}
	for _, rule := range append(builtins, o.rules...) {
		if o.strict {
			if err := rule.Compile(); err != nil {
				return nil, err
			}
		}
		if err := r.Add(rule); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewRegistryFromConfig builds a registry from environment configuration:
// the default patterns overridden by cfg.PatternsFile, with strict pattern
// compilation when cfg.StrictPatterns is set. A nil logger disables logging.
func NewRegistryFromConfig(cfg config.Config, logger *zap.Logger, opts ...Option) (*Registry, error) {
	table, err := config.Patterns(cfg, logger)
	if err != nil {
		return nil, err
	}
	base := []Option{WithPatterns(table), WithLogger(logger)}
	if cfg.StrictPatterns {
		base = append(base, WithStrictPatterns())
	}
	return NewRegistry(append(base, opts...)...)
}

// Option configures a Registry at construction time.
type Option func(*options)

type options struct {
	patterns patterns.Source
	rules    []validation.Rule
	logger   *zap.Logger
	strict   bool
}

// WithPatterns builds the pattern-backed built-ins from src instead of the
// default pattern table.
func WithPatterns(src patterns.Source) Option {
	return func(o *options) { o.patterns = src }
}

// WithRules registers custom rules next to the built-ins. A rule whose name
// is already taken makes NewRegistry fail.
func WithRules(rules ...validation.Rule) Option {
	return func(o *options) { o.rules = append(o.rules, rules...) }
}

// WithLogger sets the registry logger. Nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictPatterns compiles every pattern in NewRegistry, which then fails
// on the first invalid one instead of leaving it to evaluation.
func WithStrictPatterns() Option {
	return func(o *options) { o.strict = true }
}
