package rules

import (
	"fmt"
	"reflect"
	"strings"
)

type requiredRule struct{}

func (requiredRule) Kind() Kind { return KindRequired }

func (requiredRule) Check(value any, _ Seen) Outcome {
	present := value != nil
	if s, ok := asText(value); ok {
		present = strings.TrimSpace(s) != ""
	} else if n, ok := collectionLength(value); ok {
		present = n > 0
	}
	if present {
		return Pass()
	}
	return Fail("validation.required",
		fmt.Sprintf("is required, got %s", materialize(value)),
		map[string]any{"value": materialize(value)},
	)
}

type stringRule struct{}

func (stringRule) Kind() Kind { return KindString }

func (stringRule) Check(value any, _ Seen) Outcome {
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.String && !isNumberText(value) {
		return Pass()
	}
	return Fail("validation.string",
		fmt.Sprintf("must be a string, got %s (type %T)", materialize(value), value),
		map[string]any{"type": fmt.Sprintf("%T", value)},
	)
}

type integerRule struct{}

func (integerRule) Kind() Kind { return KindInteger }

func (integerRule) Check(value any, _ Seen) Outcome {
	if s, ok := asText(value); ok {
		if _, ok := parseInteger(s, 10); ok {
			return Pass()
		}
	} else if n, ok := nativeNumber(value); ok && n.IsInt() {
		return Pass()
	}
	return Fail("validation.integer",
		fmt.Sprintf("must be an integer, got %s", materialize(value)),
		map[string]any{"value": materialize(value)},
	)
}

type numericRule struct{}

func (numericRule) Kind() Kind { return KindNumeric }

func (numericRule) Check(value any, _ Seen) Outcome {
	if s, ok := asText(value); ok {
		if _, ok := parseDecimal(s); ok {
			return Pass()
		}
	} else if _, ok := nativeNumber(value); ok {
		return Pass()
	}
	return Fail("validation.numeric",
		fmt.Sprintf("must be a number, got %s", materialize(value)),
		map[string]any{"value": materialize(value)},
	)
}

type listRule struct{}

func (listRule) Kind() Kind { return KindList }

func (listRule) Check(value any, _ Seen) Outcome {
	rv := reflect.ValueOf(value)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		if _, isBytes := value.([]byte); !isBytes {
			return Pass()
		}
	}
	return Fail("validation.list",
		fmt.Sprintf("must be a list, got %s (type %T)", materialize(value), value),
		map[string]any{"type": fmt.Sprintf("%T", value)},
	)
}

// baseRule accepts text holding the digits of a fixed base, optionally
// prefixed (0b, 0o, 0x). Signs and whitespace are rejected.
type baseRule struct {
	kind Kind
	noun string
}

func (r baseRule) Kind() Kind { return r.kind }

func (r baseRule) Check(value any, _ Seen) Outcome {
	base, _ := r.kind.Base()
	if s, ok := asText(value); ok {
		if _, ok := parseInteger(s, base); ok {
			return Pass()
		}
	}
	return Fail("validation."+r.kind.String(),
		fmt.Sprintf("must be %s number, got %s", r.noun, materialize(value)),
		map[string]any{"value": materialize(value), "base": base},
	)
}

var (
	hexRule    = baseRule{kind: KindHex, noun: "a hexadecimal"}
	octalRule  = baseRule{kind: KindOctal, noun: "an octal"}
	binaryRule = baseRule{kind: KindBinary, noun: "a binary"}
)
