package constants

const Namespace = "inquire"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Built-in rule names. Also used as keys of the default pattern table.
const (
	RuleRequired     = "required"
	RuleEmail        = "email"
	RuleURL          = "url"
	RuleAlphaNumeric = "alphanumeric"
	RuleAlpha        = "alpha"
	RuleNumeric      = "numeric"
)

// Reserved validation type names.
const (
	TypeRequired   = "required"
	TypeFormatting = "formatting"
	TypeLength     = "length"
)
