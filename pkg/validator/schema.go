package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/rulechain/pkg/chain"
	"github.com/dmitrymomot/rulechain/pkg/rules"
)

// Schema is a compiled set of field chains. It is immutable and safe for
// concurrent use; rules hold no per-call state, so a Schema is reused as is.
type Schema struct {
	fields []string
	chains map[string]*chain.Chain
}

// Compile builds a chain for every field of schema. Configuration errors of
// all fields are joined with ErrInvalidSchema, in field order.
func Compile(schema map[string]string, resolver rules.Resolver) (*Schema, error) {
	s := &Schema{
		fields: sortedFields(schema),
		chains: make(map[string]*chain.Chain, len(schema)),
	}

	var errs []error
	for _, field := range s.fields {
		c, err := chain.Build(field, schema[field], resolver)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.chains[field] = c
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidSchema}, errs...)...)
	}
	return s, nil
}

// Fields returns the schema fields, sorted.
func (s *Schema) Fields() []string {
	return slices.Clone(s.fields)
}

// Chain returns the compiled chain of field.
func (s *Schema) Chain(field string) (*chain.Chain, bool) {
	c, ok := s.chains[field]
	return c, ok
}

// Validate runs every field chain against request. A field missing from the
// request fails with ErrFieldMissing and does not affect other fields.
func (s *Schema) Validate(request map[string]any) Result {
	res := newResult(s.fields)
	for _, field := range s.fields {
		value, ok := request[field]
		if !ok {
			res.add(ValidationError{
				Field:             field,
				Message:           ErrFieldMissing.Error(),
				TranslationKey:    "validation.missing",
				TranslationValues: map[string]any{"field": field},
			})
			continue
		}

		for _, f := range s.chains[field].Run(value) {
			res.add(ValidationError{
				Field:             field,
				Rule:              f.Token,
				Message:           f.Outcome.Message,
				TranslationKey:    f.Outcome.TranslationKey,
				TranslationValues: withField(f.Outcome.TranslationValues, field),
			})
		}
	}
	return res
}

func withField(values map[string]any, field string) map[string]any {
	out := make(map[string]any, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["field"] = field
	return out
}

func sortedFields(schema map[string]string) []string {
	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// schemaKey encodes schema canonically. Lengths are prefixed so field names
// and specs containing separators cannot collide.
func schemaKey(schema map[string]string) string {
	var b strings.Builder
	for _, field := range sortedFields(schema) {
		spec := schema[field]
		fmt.Fprintf(&b, "%d:%s%d:%s", len(field), field, len(spec), spec)
	}
	return b.String()
}
