package validation

import "github.com/ygrebnov/inquire/constants"

// Kind enumerates the variants of Type.
type Kind uint8

const (
	KindRequired Kind = iota
	KindFormatting
	KindLength
	KindCustom
)

// Type is the category a validation rule falls under.
// It is one of the three reserved categories or a custom, named one.
// The zero value is TypeRequired.
type Type struct {
	kind Kind
	name string // set for KindCustom only
}

var (
	TypeRequired   = Type{kind: KindRequired}
	TypeFormatting = Type{kind: KindFormatting}
	TypeLength     = Type{kind: KindLength}
)

// CustomType returns a custom category with the given name.
// The name is kept verbatim, reserved words included: CustomType("required")
// is not equal to TypeRequired, although both encode to "required".
func CustomType(name string) Type {
	return Type{kind: KindCustom, name: name}
}

// ParseType decodes a raw category name. Reserved words always decode to
// their fixed category; anything else, the empty string included, decodes
// to a custom category carrying raw.
func ParseType(raw string) Type {
	switch raw {
	case constants.TypeRequired:
		return TypeRequired
	case constants.TypeFormatting:
		return TypeFormatting
	case constants.TypeLength:
		return TypeLength
	default:
		return CustomType(raw)
	}
}

func (t Type) Kind() Kind { return t.kind }

func (t Type) IsCustom() bool { return t.kind == KindCustom }

// String encodes the category: the reserved word for fixed categories,
// the embedded name for custom ones.
func (t Type) String() string {
	switch t.kind {
	case KindRequired:
		return constants.TypeRequired
	case KindFormatting:
		return constants.TypeFormatting
	case KindLength:
		return constants.TypeLength
	default:
		return t.name
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}
