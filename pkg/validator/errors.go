package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldMissing marks a schema field absent from the request.
	ErrFieldMissing = errors.New("field is missing")

	// ErrInvalidSchema wraps every configuration error found while compiling a schema.
	ErrInvalidSchema = errors.New("invalid schema")
)
