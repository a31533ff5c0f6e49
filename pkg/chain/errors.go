package chain

import (
	"errors"
	"fmt"
)

// ErrEmptySegment is returned for a chain with an empty segment such as "integer||size:3".
var ErrEmptySegment = errors.New("empty rule segment")

// ConfigError reports a chain that cannot be built. It identifies the field,
// the offending token and its zero-based segment position, and wraps the
// cause so errors.Is works with the rules and chain sentinels.
type ConfigError struct {
	Field    string
	Spec     string
	Token    string
	Position int
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field %q: segment %d (%q) of %q: %v", e.Field, e.Position, e.Token, e.Spec, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
