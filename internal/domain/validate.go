package domain

import "strings"

// Constraints declares the declarative checks applied to a single input value.
// Zero-valued fields mean "no constraint": a MinLength/MaxLength of 0 and a
// nil Min/Max are not enforced.
type Constraints struct {
	Required  bool
	MinLength int      // applies to text values only
	MaxLength int      // applies to text values only
	Min       *float64 // applies to numeric values only
	Max       *float64 // applies to numeric values only
}

// Float returns a pointer to v, for use as a Constraints.Min or Max bound.
func Float(v float64) *float64 {
	return &v
}

// Validate reports whether value satisfies every applicable constraint in c.
//
// A constraint applies only when the value's type matches the constraint's
// relevant type: MinLength and MaxLength are checked against text values,
// Min and Max against numeric values (int, int64, float64). Constraints whose
// relevant type does not match are silently skipped, so a constraint with no
// applicable check path is satisfied vacuously.
//
// Required is satisfied by any numeric value and by text that is non-empty
// after trimming whitespace. A nil value fails Required and satisfies every
// other constraint.
//
// Validate is a pure predicate: no side effects, no panics.
func Validate(value any, c Constraints) bool {
	switch v := value.(type) {
	case string:
		return validateText(v, c)
	case int:
		return validateNumber(float64(v), c)
	case int64:
		return validateNumber(float64(v), c)
	case float64:
		return validateNumber(v, c)
	case nil:
		return !c.Required
	default:
		// No applicable checks for this type; all constraints hold vacuously.
		return true
	}
}

func validateText(v string, c Constraints) bool {
	if c.Required && strings.TrimSpace(v) == "" {
		return false
	}
	if c.MinLength > 0 && len(v) < c.MinLength {
		return false
	}
	if c.MaxLength > 0 && len(v) > c.MaxLength {
		return false
	}
	return true
}

func validateNumber(v float64, c Constraints) bool {
	if c.Min != nil && v < *c.Min {
		return false
	}
	if c.Max != nil && v > *c.Max {
		return false
	}
	return true
}
