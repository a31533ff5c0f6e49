package rules

import "errors"

var (
	// ErrUnknownRule is returned when a chain names a token that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrMissingParam is returned when a rule that requires a parameter gets none.
	ErrMissingParam = errors.New("missing rule parameter")

	// ErrInvalidParam is returned when a rule parameter cannot be parsed.
	ErrInvalidParam = errors.New("invalid rule parameter")

	// ErrUnexpectedParam is returned when a parameterless rule is given a parameter.
	ErrUnexpectedParam = errors.New("rule does not accept a parameter")

	// ErrDuplicateRule is returned when registering a token twice.
	ErrDuplicateRule = errors.New("rule already registered")

	// ErrInvalidToken is returned when registering a token the chain grammar cannot express.
	ErrInvalidToken = errors.New("invalid rule token")
)
