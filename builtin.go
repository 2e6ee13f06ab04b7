package inquire

import (
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/inquire/constants"
	"github.com/ygrebnov/inquire/errors"
	"github.com/ygrebnov/inquire/patterns"
	"github.com/ygrebnov/inquire/validation"
)

// Failure messages of the built-in rules.
const (
	MessageRequired     = "Field is required"
	MessageEmail        = "Invalid email address"
	MessageURL          = "Invalid URL"
	MessageAlphaNumeric = "Only letters and numbers are allowed"
	MessageAlpha        = "Only letters are allowed"
	MessageNumeric      = "Only numbers are allowed"
)

type patternRuleSpec struct {
	name    string
	message string
}

// patternRules lists the pattern-backed built-ins in declaration order.
var patternRules = []patternRuleSpec{
	{constants.RuleEmail, MessageEmail},
	{constants.RuleURL, MessageURL},
	{constants.RuleAlphaNumeric, MessageAlphaNumeric},
	{constants.RuleAlpha, MessageAlpha},
	{constants.RuleNumeric, MessageNumeric},
}

// Built-in rules, backed by the default pattern table.
var (
	// Required passes non-empty strings only.
	Required = validation.NewRule(
		constants.RuleRequired,
		validation.TypeRequired,
		MessageRequired,
		validation.WithPredicate(nonEmptyText),
	)

	// Email passes local@domain.tld shaped strings.
	Email = mustPatternRule(constants.RuleEmail, MessageEmail)

	// URL passes scheme://... shaped strings.
	URL = mustPatternRule(constants.RuleURL, MessageURL)

	// AlphaNumeric passes non-empty strings of ASCII letters and digits.
	AlphaNumeric = mustPatternRule(constants.RuleAlphaNumeric, MessageAlphaNumeric)

	// Alpha passes non-empty strings of ASCII letters.
	Alpha = mustPatternRule(constants.RuleAlpha, MessageAlpha)

	// Numeric passes non-empty strings of ASCII digits.
	Numeric = mustPatternRule(constants.RuleNumeric, MessageNumeric)
)

// Builtins returns the built-in rules: Required, Email, URL, AlphaNumeric,
// Alpha and Numeric, in that order.
func Builtins() []validation.Rule {
	return []validation.Rule{Required, Email, URL, AlphaNumeric, Alpha, Numeric}
}

// Builtin returns the built-in rule with the given name.
func Builtin(name string) (validation.Rule, bool) {
	for _, r := range Builtins() {
		if r.Name() == name {
			return r, true
		}
	}
	return validation.Rule{}, false
}

// NewRuleSet builds the built-in rules against src instead of the default
// pattern table. Required does not use a pattern and is returned unchanged.
// Every pattern-backed built-in name must be present in src. Other entries
// of src are not turned into rules; see UnusedPatterns.
func NewRuleSet(src patterns.Source) ([]validation.Rule, error) {
	rules := make([]validation.Rule, 0, len(patternRules)+1)
	rules = append(rules, Required)
	for _, pr := range patternRules {
		r, err := patternRule(src, pr.name, pr.message)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// UnusedPatterns returns the sorted names in t that no built-in rule uses.
// A pattern file can only override built-in patterns; custom patterns need a
// rule of their own (see WithRules).
func UnusedPatterns(t patterns.Table) []string {
	var unused []string
	for _, name := range t.Names() {
		if !slices.ContainsFunc(patternRules, func(pr patternRuleSpec) bool { return pr.name == name }) {
			unused = append(unused, name)
		}
	}
	return unused
}

func patternRule(src patterns.Source, name, message string) (validation.Rule, error) {
	source, ok := src.Lookup(name)
	if !ok {
		return validation.Rule{}, errorc.With(
			errors.ErrPatternNotFound,
			errorc.String(errors.ErrorFieldRuleName, name),
		)
	}
	return validation.NewRule(
		name,
		validation.TypeFormatting,
		message,
		validation.WithPattern(source),
	), nil
}

func mustPatternRule(name, message string) validation.Rule {
	r, err := patternRule(patterns.Default(), name, message)
	if err != nil {
		panic(err) // unreachable: the default table holds every built-in name
	}
	return r
}

func nonEmptyText(value any) bool {
	s, ok := validation.AsText(value)
	return ok && s != ""
}
