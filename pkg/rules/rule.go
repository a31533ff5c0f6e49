package rules

import "fmt"

// Rule is a single check in a chain. Implementations must be immutable after
// construction so one instance can serve concurrent validations.
type Rule interface {
	Kind() Kind
	// Check validates value. seen holds the kinds attached before this rule
	// in the same chain. Check never panics on malformed input.
	Check(value any, seen Seen) Outcome
}

// Outcome is the result of a single Check call.
type Outcome struct {
	Passed            bool
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Pass returns a passing outcome.
func Pass() Outcome {
	return Outcome{Passed: true}
}

// Fail returns a failed outcome with a message and translation metadata.
func Fail(key, message string, values map[string]any) Outcome {
	return Outcome{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// Param is the raw parameter of a chain segment.
type Param struct {
	Raw     string
	Present bool
}

// NoParam is the parameter of a segment without a colon.
var NoParam = Param{}

// WithParam returns a present parameter.
func WithParam(raw string) Param {
	return Param{Raw: raw, Present: true}
}

func (p Param) String() string {
	if !p.Present {
		return "<none>"
	}
	return fmt.Sprintf("%q", p.Raw)
}

// Constructor builds a rule from its segment parameter.
type Constructor func(p Param) (Rule, error)

// CheckFunc adapts a plain function into a Rule of KindCustom.
type CheckFunc func(value any, seen Seen) Outcome

func (f CheckFunc) Kind() Kind { return KindCustom }

func (f CheckFunc) Check(value any, seen Seen) Outcome {
	return f(value, seen)
}

// Custom returns a constructor for a parameterless custom rule.
func Custom(fn CheckFunc) Constructor {
	return func(p Param) (Rule, error) {
		if p.Present {
			return nil, ErrUnexpectedParam
		}
		return fn, nil
	}
}

// noParam wraps a constructor for kinds that reject parameters.
func noParam(r Rule) Constructor {
	return func(p Param) (Rule, error) {
		if p.Present {
			return nil, ErrUnexpectedParam
		}
		return r, nil
	}
}

// materialize renders a value for messages.
func materialize(value any) string {
	if value == nil {
		return "<nil>"
	}
	if s, ok := asText(value); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", value)
}
