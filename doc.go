// Package inquire validates single field values against named rules.
//
// A rule (validation.Rule) carries a name, a category (validation.Type), a
// failure message and at most one effective matching strategy: a custom
// predicate, or a regular expression the whole value must match. Rules with
// neither always pass and only classify.
//
// The package provides ready-made rules backed by the default pattern table:
//
//	ok, err := inquire.Email.Evaluate("a@b.com") // true, nil
//
// and a Registry for looking rules up by name and checking a value against
// several of them at once:
//
//	registry, _ := inquire.NewRegistry()
//	err := registry.Validate(value, "required", "alphanumeric")
//
// A nil error means every rule passed. Otherwise err is a *validation.Error
// listing the violations, or, for a rule whose pattern does not compile, an
// error matching errors.ErrInvalidPattern.
package inquire
