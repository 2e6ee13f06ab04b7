package inquire

import (
	"slices"
	"sync"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/ygrebnov/inquire/errors"
	"github.com/ygrebnov/inquire/validation"
)

// Registry is a name-indexed set of rules. It is safe for concurrent use.
// The zero value is an empty registry without logging; NewRegistry returns
// one seeded with the built-ins.
type Registry struct {
	mu     sync.RWMutex
	rules  map[string]validation.Rule // rule name -> rule
	logger *zap.Logger
}

// Add registers a rule under its name.
func (r *Registry) Add(rule validation.Rule) error {
	name := rule.Name()
	if name == "" {
		return errors.ErrInvalidRule
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return errorc.With(
			errors.ErrDuplicateRule,
			errorc.String(errors.ErrorFieldRuleName, name),
		)
	}
	if r.rules == nil {
		r.rules = make(map[string]validation.Rule)
	}
	r.rules[name] = rule
	r.log().Debug("rule added", zap.String("rule", name), zap.Stringer("type", rule.Type()))
	return nil
}

// Get returns the rule registered under name.
func (r *Registry) Get(name string) (validation.Rule, error) {
	r.mu.RLock()
	rule, ok := r.rules[name]
	r.mu.RUnlock()

	if !ok {
		r.log().Debug("rule not found", zap.String("rule", name))
		return validation.Rule{}, errorc.With(
			errors.ErrRuleNotFound,
			errorc.String(errors.ErrorFieldRuleName, name),
		)
	}
	return rule, nil
}

// Names returns the sorted names of the registered rules.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Evaluate reports whether value passes the rule registered under name.
func (r *Registry) Evaluate(name string, value any) (bool, error) {
	rule, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return r.evaluate(rule, value)
}

// Validate checks value against each named rule, in order.
// It returns nil when every rule passes, and a *validation.Error holding one
// violation per failed rule otherwise. An unknown rule name or a rule with an
// invalid pattern stops validation and its error is returned as is.
func (r *Registry) Validate(value any, names ...string) error {
	var verr validation.Error
	for _, name := range names {
		rule, err := r.Get(name)
		if err != nil {
			return err
		}
		ok, err := r.evaluate(rule, value)
		if err != nil {
			return err
		}
		if !ok {
			verr.Add(&validation.Violation{Rule: rule.Name(), Type: rule.Type(), Message: rule.Message()})
		}
	}
	if verr.Empty() {
		return nil
	}
	return &verr
}

func (r *Registry) evaluate(rule validation.Rule, value any) (bool, error) {
	ok, err := rule.Evaluate(value)
	if err != nil {
		r.log().Warn("rule is broken", zap.String("rule", rule.Name()), zap.Error(err))
	}
	return ok, err
}

func (r *Registry) log() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}
