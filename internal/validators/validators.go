// Package validators implements the declarative form-validation engine used
// by every input screen. A form declares a [Schema] mapping field names to
// ordered rule lists; Validate evaluates the schema against the current field
// values and reports at most one violation per field, the first in rule
// order.
//
// Rules other than [Required] pass on empty input. An optional field is
// checked only once the user typed something; required-ness is always an
// explicit [Required] entry at the head of the rule list.
//
// The engine is deliberately dumb: no reflection, no struct tags, only
// string field values as forms hold them. Cross-field rules ([AfterField],
// [EqualsField]) read the other field's raw value from the same values map.
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Values holds the raw form input keyed by field name.
type Values map[string]string

// Rule checks one field against the full value set and returns a violation
// message, or an empty string when the value passes.
type Rule func(field string, values Values) string

// Schema maps field names to their ordered rule lists.
type Schema map[string][]Rule

// Validate evaluates every field of the schema and returns the first
// violation message per failing field. An empty map means the form may be
// submitted.
func (s Schema) Validate(values Values) map[string]string {
	violations := make(map[string]string)
	for field, rules := range s {
		for _, rule := range rules {
			if message := rule(field, values); message != "" {
				violations[field] = message
				break
			}
		}
	}
	return violations
}

// Required rejects empty and blank values.
func Required(message string) Rule {
	return func(field string, values Values) string {
		if strings.TrimSpace(values[field]) == "" {
			return message
		}
		return ""
	}
}

// MinLen rejects non-empty values shorter than n characters.
func MinLen(n int, message string) Rule {
	return func(field string, values Values) string {
		value := values[field]
		if value == "" {
			return ""
		}
		if utf8.RuneCountInString(value) < n {
			return message
		}
		return ""
	}
}

// MaxLen rejects values longer than n characters.
func MaxLen(n int, message string) Rule {
	return func(field string, values Values) string {
		if utf8.RuneCountInString(values[field]) > n {
			return message
		}
		return ""
	}
}

// Pattern rejects non-empty values not matching the expression. The
// expression must compile; Pattern panics otherwise, which surfaces schema
// typos at startup rather than at submit time.
func Pattern(expression, message string) Rule {
	re := regexp.MustCompile(expression)
	return func(field string, values Values) string {
		value := values[field]
		if value == "" {
			return ""
		}
		if !re.MatchString(value) {
			return message
		}
		return ""
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email rejects non-empty values that do not look like an email address.
func Email(message string) Rule {
	return func(field string, values Values) string {
		value := values[field]
		if value == "" {
			return ""
		}
		if !emailRe.MatchString(value) {
			return message
		}
		return ""
	}
}

// Datetime rejects non-empty values that do not parse with layout.
func Datetime(layout, message string) Rule {
	return func(field string, values Values) string {
		value := strings.TrimSpace(values[field])
		if value == "" {
			return ""
		}
		if _, err := time.Parse(layout, value); err != nil {
			return message
		}
		return ""
	}
}

// AfterField rejects a value that does not parse as a time strictly after
// the other field's value. When either side is empty or unparsable the rule
// passes; format errors belong to [Datetime] on the respective field.
func AfterField(other, layout, message string) Rule {
	return func(field string, values Values) string {
		this, err := time.Parse(layout, strings.TrimSpace(values[field]))
		if err != nil {
			return ""
		}
		that, err := time.Parse(layout, strings.TrimSpace(values[other]))
		if err != nil {
			return ""
		}
		if !this.After(that) {
			return message
		}
		return ""
	}
}

// EqualsField rejects a value differing from the other field's value. Used
// for password confirmation.
func EqualsField(other, message string) Rule {
	return func(field string, values Values) string {
		if values[field] != values[other] {
			return message
		}
		return ""
	}
}

// MaxLenMessage renders the shared over-length message for a limit.
func MaxLenMessage(limit int) string {
	return fmt.Sprintf("Must be at most %d characters", limit)
}

// MinLenMessage renders the shared under-length message for a limit.
func MinLenMessage(limit int) string {
	return fmt.Sprintf("Must be at least %d characters", limit)
}
