package errors

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/inquire/constants"
)

func newError(msg string) error {
	return errorc.New(constants.Namespace + ": " + msg)
}

// Sentinel errors. Use errors.Is to match.
var (
	ErrInvalidPattern    = newError("invalid pattern")
	ErrRuleViolated      = newError("rule violated")
	ErrInvalidRule       = newError("rule must have a non-empty name")
	ErrDuplicateRule     = newError("duplicate rule")
	ErrRuleNotFound      = newError("rule not found")
	ErrPatternNotFound   = newError("pattern not found")
	ErrLoadPatterns      = newError("cannot load patterns")
	ErrUnsupportedFormat = newError("unsupported patterns format")
	ErrLoadConfig        = newError("cannot load config")
)

// Key is a structured error field key, a dotted path under the package namespace.
type Key string

// newKey builds namespace.segments...name.
func newKey(name string, segments ...string) Key {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, constants.ErrorFieldNamespace)
	parts = append(parts, segments...)
	parts = append(parts, name)
	return Key(strings.Join(parts, "."))
}

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentRule     = "rule"
	keySegmentPatterns = "patterns"
)

// Exported structured error field keys
var (
	ErrorFieldRuleName    = newKey("name", keySegmentRule)    // inquire.rule.name
	ErrorFieldRuleType    = newKey("type", keySegmentRule)    // inquire.rule.type
	ErrorFieldRulePattern = newKey("pattern", keySegmentRule) // inquire.rule.pattern
)

var (
	ErrorFieldPatternsPath   = newKey("path", keySegmentPatterns)   // inquire.patterns.path
	ErrorFieldPatternsFormat = newKey("format", keySegmentPatterns) // inquire.patterns.format
)

var (
	ErrorFieldCause = newKey("cause")
)
