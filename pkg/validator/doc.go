// Package validator validates requests against schemas of rule chains.
//
// A schema maps field names to chain specifications; a request maps field
// names to values of any shape:
//
//	v := validator.New()
//	res, err := v.Validate(
//	    map[string]any{"age": "42", "tags": []any{"a", "b", "c"}},
//	    map[string]string{"age": "integer|size:42", "tags": "list|size:3"},
//	)
//	if err != nil {
//	    // configuration error: unknown rule, bad parameter, empty segment
//	}
//	if !res.OK {
//	    // res.Errors["age"] lists the messages of every failed rule
//	}
//
// # Semantics
//
// Every field of the schema is checked in sorted order. A field absent from
// the request fails with ErrFieldMissing. Within a chain every rule runs even
// after an earlier rule failed, so callers get complete diagnostics. Result.OK
// is true only if every rule of every field passed.
//
// # Errors
//
// Configuration errors are returned from Compile and Validate before any
// request data is read; they wrap ErrInvalidSchema and one *chain.ConfigError
// per broken field. Validation failures never surface as Go errors from
// Validate. Result.Err converts them to ValidationErrors for callers that want
// an error value; it satisfies errors.Is(err, ErrValidationFailed).
//
// # Caching
//
// Validator keeps an LRU of compiled schemas keyed by their canonical form.
// Compiled rules are immutable, so a cached Schema is shared between
// concurrent calls without copying.
package validator
