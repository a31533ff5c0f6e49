package chain

import (
	"errors"

	"github.com/dmitrymomot/rulechain/pkg/rules"
)

// Step is a rule placed in a chain together with the kinds attached before it.
type Step struct {
	Token string
	Rule  rules.Rule
	Seen  rules.Seen
}

// Chain is the ordered, ready-to-run list of rules for one field.
// A Chain is immutable and may be run concurrently.
type Chain struct {
	field string
	spec  string
	steps []Step
}

// Failure is a failed step of a chain run.
type Failure struct {
	Token    string
	Position int
	Outcome  rules.Outcome
}

// Build parses spec and instantiates its rules through resolver. Every rule
// observes the kinds of the rules placed before it in the same chain.
func Build(field, spec string, resolver rules.Resolver) (*Chain, error) {
	segments, err := Split(spec)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Field = field
		}
		return nil, err
	}

	c := &Chain{field: field, spec: spec, steps: make([]Step, 0, len(segments))}
	kinds := make(rules.Seen, 0, len(segments))
	for _, seg := range segments {
		ctor, err := resolver.Resolve(seg.Name)
		if err != nil {
			return nil, c.configError(seg, err)
		}
		rule, err := ctor(seg.Param)
		if err != nil {
			return nil, c.configError(seg, err)
		}

		// Full slice expression: later appends must never leak into this prefix.
		c.steps = append(c.steps, Step{Token: seg.Name, Rule: rule, Seen: kinds[:len(kinds):len(kinds)]})
		kinds = append(kinds, rule.Kind())
	}
	return c, nil
}

func (c *Chain) configError(seg Segment, err error) error {
	return &ConfigError{Field: c.field, Spec: c.spec, Token: seg.Name, Position: seg.Position, Err: err}
}

// Run executes every step against value in order. It never stops early: the
// failures of all steps are returned in chain order.
func (c *Chain) Run(value any) []Failure {
	var failures []Failure
	for i, step := range c.steps {
		if out := step.Rule.Check(value, step.Seen); !out.Passed {
			failures = append(failures, Failure{Token: step.Token, Position: i, Outcome: out})
		}
	}
	return failures
}

// Field returns the field the chain was built for.
func (c *Chain) Field() string { return c.field }

// Steps returns a copy of the chain steps.
func (c *Chain) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Len returns the number of rules in the chain.
func (c *Chain) Len() int { return len(c.steps) }

// Spec returns the specification the chain was built from.
func (c *Chain) Spec() string { return c.spec }
