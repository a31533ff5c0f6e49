// Package rulechain validates request data against schemas of rule chains.
//
// A schema maps each request field to a chain: rule tokens joined with '|',
// each optionally followed by ':' and a parameter.
//
//	res, err := rulechain.Validate(
//		map[string]any{"age": "42", "code": "0x2a", "tags": []any{"a", "b"}},
//		map[string]string{
//			"age":  "integer|size:42",
//			"code": "hex|size:42",
//			"tags": "list|max:3",
//		},
//	)
//	if err != nil {
//		// the schema itself is broken: unknown rule, bad parameter, ...
//	}
//	if !res.OK {
//		// res.Errors["age"] lists the messages of every failed rule
//	}
//
// Rules earlier in a chain shape how later ones read the value. "size" and
// its relatives measure a value as a number after integer, numeric, binary,
// octal or hex; as an element count after list; and as a character count
// otherwise. So "0x2a" has size 42 under "hex|size:42" but size 4 under
// "string|size:4".
//
// Every rule of every field runs; a failing rule never hides the ones after
// it. A field absent from the request fails with "field is missing".
//
// The package-level functions share one Validator built on the default rule
// registry. Use pkg/validator directly for separate registries, custom
// loggers or cache sizes. The rulechain command in cmd/rulechain exposes the
// same engine as a CLI and an HTTP API.
package rulechain
