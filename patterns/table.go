package patterns

import (
	"maps"
	"slices"

	"github.com/ygrebnov/inquire/constants"
)

// Source looks up a regular expression source by rule name.
type Source interface {
	Lookup(name string) (string, bool)
}

// Table is a Source backed by a map of rule name -> pattern source.
type Table map[string]string

// Built-in pattern sources. Each one is matched against the whole value.
const (
	Email        = `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`
	URL          = `[A-Za-z][A-Za-z0-9+.\-]*://[^\s/?#]+[^\s]*`
	AlphaNumeric = `[A-Za-z0-9]+`
	Alpha        = `[A-Za-z]+`
	Numeric      = `[0-9]+`
)

// Default returns a fresh copy of the built-in pattern table.
func Default() Table {
	return Table{
		constants.RuleEmail:        Email,
		constants.RuleURL:          URL,
		constants.RuleAlphaNumeric: AlphaNumeric,
		constants.RuleAlpha:        Alpha,
		constants.RuleNumeric:      Numeric,
	}
}

func (t Table) Lookup(name string) (string, bool) {
	p, ok := t[name]
	return p, ok
}

// Names returns the sorted rule names present in the table.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Merge returns a new table holding t's entries overridden by other's.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	maps.Copy(out, t)
	maps.Copy(out, other)
	return out
}
