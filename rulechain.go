package rulechain

import (
	"github.com/dmitrymomot/rulechain/pkg/rules"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

var std = validator.New()

// Validate checks request against schema with the default Validator.
// A non-nil error means schema is invalid; failed rules are reported in the
// Result only.
func Validate(request map[string]any, schema map[string]string) (validator.Result, error) {
	return std.Validate(request, schema)
}

// Compile compiles schema with the default Validator for repeated use.
func Compile(schema map[string]string) (*validator.Schema, error) {
	return std.Compile(schema)
}

// Register adds a rule to the default registry. It fails with
// rules.ErrDuplicateRule for taken tokens and rules.ErrInvalidToken for
// tokens that cannot appear in a chain.
func Register(token string, ctor rules.Constructor) error {
	return std.Registry().Register(token, ctor)
}

// Rules returns the tokens known to the default registry, sorted.
func Rules() []string {
	return std.Registry().Tokens()
}
