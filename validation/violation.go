package validation

import (
	"encoding/json"
	"fmt"

	"github.com/ygrebnov/inquire/errors"
)

// Violation reports a value rejected by a rule.
// It matches errors.ErrRuleViolated with errors.Is.
type Violation struct {
	Rule    string // name of the rule that failed
	Type    Type   // category of the rule that failed
	Message string // the rule's failure message
}

func (v *Violation) Error() string {
	return fmt.Sprintf("rule %q: %s", v.Rule, v.Message)
}

func (v *Violation) Is(target error) bool {
	return target == errors.ErrRuleViolated
}

// MarshalJSON exports Violation as an object with rule, type, and message fields.
func (v *Violation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rule    string `json:"rule"`
		Type    Type   `json:"type"`
		Message string `json:"message"`
	}{
		Rule:    v.Rule,
		Type:    v.Type,
		Message: v.Message,
	})
}
