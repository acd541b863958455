// Package validation implements per-endpoint field validation.
// Each endpoint declares a typed rule set: a field name mapped to an ordered
// list of rule predicates. Evaluation collects every violation, producing a
// field -> messages map suitable for the error envelope.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
)

// Errors maps a field name to the ordered list of violation messages for it.
// It satisfies the error interface so usecases can surface field-level
// failures (e.g. uniqueness) through their normal error return.
type Errors map[string][]string

// Error implements the error interface.
func (e Errors) Error() string {
	return "validation failed"
}

// Add appends a violation message for the given field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Rule checks one constraint against a single field.
// It returns a human-readable violation message, or "" when satisfied.
// Rules close over the value they check; optional rules pass on nil values.
type Rule func(field string) string

// Validator evaluates rule sets and accumulates violations.
type Validator struct {
	errs Errors
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{errs: Errors{}}
}

// Field evaluates the rules for one field in order, recording every violation.
func (v *Validator) Field(name string, rules ...Rule) {
	for _, r := range rules {
		if msg := r(name); msg != "" {
			v.errs.Add(name, msg)
		}
	}
}

// Errors returns the accumulated violations, or nil when everything passed.
func (v *Validator) Errors() Errors {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// Required fails when the value is absent or empty.
func Required(val *string) Rule {
	return func(field string) string {
		if val == nil || *val == "" {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	}
}

// MaxLen fails when a present value is longer than n characters.
func MaxLen(val *string, n int) Rule {
	return func(field string) string {
		if val != nil && len(*val) > n {
			return fmt.Sprintf("The %s must not be greater than %d characters.", field, n)
		}
		return ""
	}
}

// MinLen fails when a present value is shorter than n characters.
func MinLen(val *string, n int) Rule {
	return func(field string) string {
		if val != nil && len(*val) < n {
			return fmt.Sprintf("The %s must be at least %d characters.", field, n)
		}
		return ""
	}
}

// Email fails when a present value is not a bare, syntactically valid address.
func Email(val *string) Rule {
	return func(field string) string {
		if val == nil {
			return ""
		}
		addr, err := mail.ParseAddress(*val)
		if err != nil || addr.Address != *val {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
		return ""
	}
}

// Match fails when a present value does not match the pattern.
func Match(val *string, re *regexp.Regexp) Rule {
	return func(field string) string {
		if val != nil && !re.MatchString(*val) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}
		return ""
	}
}

// Between fails when a present numeric value is outside [min, max].
func Between(val *int, min, max int) Rule {
	return func(field string) string {
		if val != nil && (*val < min || *val > max) {
			return fmt.Sprintf("The %s must be between %d and %d.", field, min, max)
		}
		return ""
	}
}

// In fails when a present value is not one of the allowed choices.
func In(val *string, allowed ...string) Rule {
	return func(field string) string {
		if val == nil {
			return ""
		}
		for _, a := range allowed {
			if *val == a {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}
}

// Taken is the message for a uniqueness violation, reported by usecases after
// consulting the repository.
func Taken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", field)
}
