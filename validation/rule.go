package validation

import (
	"fmt"
	"regexp"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/inquire/errors"
)

// Predicate is a custom check over a single value.
type Predicate func(value any) bool

// Rule is a named, immutable check over a single value.
//
// A rule matches values with a predicate, a pattern, both or neither.
// The predicate takes precedence over the pattern; a rule with neither
// always passes. The rule's Type is metadata and does not affect evaluation.
type Rule struct {
	name       string
	typ        Type
	message    string
	pattern    string
	hasPattern bool
	predicate  Predicate
}

// RuleOption configures a Rule at construction time.
type RuleOption func(*Rule)

// WithPattern sets the regular expression source the whole value must match.
// The source is not checked until the rule is evaluated or compiled.
func WithPattern(source string) RuleOption {
	return func(r *Rule) {
		r.pattern = source
		r.hasPattern = true
	}
}

// WithPredicate sets a custom check. A nil predicate is ignored.
func WithPredicate(fn Predicate) RuleOption {
	return func(r *Rule) {
		if fn != nil {
			r.predicate = fn
		}
	}
}

// NewRule constructs a rule. It never fails.
func NewRule(name string, typ Type, message string, opts ...RuleOption) Rule {
	r := Rule{
		name:    name,
		typ:     typ,
		message: message,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Rule) Name() string { return r.name }

func (r Rule) Type() Type { return r.typ }

func (r Rule) Message() string { return r.message }

// Pattern returns the pattern source and whether the rule has one.
func (r Rule) Pattern() (string, bool) { return r.pattern, r.hasPattern }

// Predicate returns the custom check, or nil.
func (r Rule) Predicate() Predicate { return r.predicate }

func (r Rule) HasPattern() bool { return r.hasPattern }

func (r Rule) HasPredicate() bool { return r.predicate != nil }

func (r Rule) String() string {
	return fmt.Sprintf("%s(%s)", r.name, r.typ)
}

// Evaluate reports whether value passes the rule.
//
//   - With a predicate, its result is returned as is.
//   - With a pattern, value must be text (see AsText) that matches the
//     pattern as a whole. Non-text values fail without an error, before the
//     pattern is compiled.
//   - With neither, value always passes.
//
// The only error returned wraps errors.ErrInvalidPattern, for a text value
// checked against a pattern that does not compile. Panics raised by a predicate are not recovered.
func (r Rule) Evaluate(value any) (bool, error) {
	if r.predicate != nil {
		return r.predicate(value), nil
	}
	if !r.hasPattern {
		return true, nil
	}

	s, ok := AsText(value)
	if !ok {
		return false, nil
	}
	re, err := r.compile()
	if err != nil {
		return false, err
	}
	return matchesWhole(re, s), nil
}

// Validate evaluates value and returns nil when it passes, a *Violation when
// it does not, or the invalid pattern error.
func (r Rule) Validate(value any) error {
	ok, err := r.Evaluate(value)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return &Violation{Rule: r.name, Type: r.typ, Message: r.message}
}

// Compile checks the rule's pattern, if any, without evaluating a value.
func (r Rule) Compile() error {
	if !r.hasPattern {
		return nil
	}
	_, err := r.compile()
	return err
}

func (r Rule) compile() (*regexp.Regexp, error) {
	compiled, cerr := compiledPatterns.get(r.pattern)
	if cerr != nil {
		return nil, errorc.With(
			errors.ErrInvalidPattern,
			errorc.String(errors.ErrorFieldRuleName, r.name),
			errorc.String(errors.ErrorFieldRulePattern, r.pattern),
			errorc.Error(errors.ErrorFieldCause, cerr),
		)
	}
	return compiled, nil
}

// AsText returns value as a string when it is one: a string, or a non-nil
// pointer to a string.
func AsText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	default:
		return "", false
	}
}
