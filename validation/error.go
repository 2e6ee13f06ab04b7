package validation

import (
	"encoding/json"
	"strings"
	"sync"
)

// Error accumulates the violations found while checking one value against
// several rules. It unwraps to its violations so errors.Is/As keep working.
type Error struct {
	mu         sync.Mutex
	violations []*Violation
}

// Add appends a violation. Nil violations are ignored.
func (e *Error) Add(v *Violation) {
	if e == nil || v == nil {
		return
	}
	e.mu.Lock()
	e.violations = append(e.violations, v)
	e.mu.Unlock()
}

// Len returns the number of accumulated violations.
func (e *Error) Len() int {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	n := len(e.violations)
	e.mu.Unlock()
	return n
}

// Empty reports whether there are no violations.
func (e *Error) Empty() bool { return e.Len() == 0 }

// Violations returns a copy of the accumulated violations in insertion order.
func (e *Error) Violations() []*Violation {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Violation, len(e.violations))
	copy(out, e.violations)
	return out
}

// Messages returns the failure messages in insertion order.
func (e *Error) Messages() []string {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		out = append(out, v.Message)
	}
	return out
}

// Rules returns the names of the failed rules (unique, order preserved by first occurrence).
func (e *Error) Rules() []string {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, v := range e.violations {
		if _, ok := seen[v.Rule]; !ok {
			seen[v.Rule] = struct{}{}
			out = append(out, v.Rule)
		}
	}
	return out
}

// Error returns a human-readable, multi-line description of all violations.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(e.violations) {
	case 0:
		return ""
	case 1:
		return e.violations[0].Error()
	default:
		var b strings.Builder
		b.WriteString("validation failed (\n")
		for i, v := range e.violations {
			b.WriteString("  ")
			b.WriteString(v.Error())
			if i < len(e.violations)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n)")
		return b.String()
	}
}

// Unwrap exposes the violations to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	errs := make([]error, 0, len(e.violations))
	for _, v := range e.violations {
		errs = append(errs, v)
	}
	return errs
}

// MarshalJSON exports Error as a map of rule name -> failure message.
// Example:
//
//	{
//	  "required": "Field is required",
//	  "email":    "Invalid email address"
//	}
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	by := make(map[string]string, len(e.violations))
	for _, v := range e.violations {
		by[v.Rule] = v.Message
	}
	return json.Marshal(by)
}
