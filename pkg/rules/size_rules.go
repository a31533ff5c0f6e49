package rules

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// boundRule compares the resolved size of a value against inclusive bounds.
// A nil bound is open.
type boundRule struct {
	kind     Kind
	min, max *big.Rat
}

func (r boundRule) Kind() Kind { return r.kind }

func (r boundRule) Check(value any, seen Seen) Outcome {
	got, ok := Measure(value, seen)
	if !ok {
		return Fail("validation.size_unresolved",
			fmt.Sprintf("could not determine size of %s (type %T)", materialize(value), value),
			map[string]any{"type": fmt.Sprintf("%T", value)},
		)
	}

	if (r.min == nil || got.Cmp(r.min) >= 0) && (r.max == nil || got.Cmp(r.max) <= 0) {
		return Pass()
	}

	actual := formatRat(got)
	switch r.kind {
	case KindSize:
		return Fail("validation.size",
			fmt.Sprintf("must have size %s, got %s", formatRat(r.min), actual),
			map[string]any{"size": formatRat(r.min), "actual": actual},
		)
	case KindMin:
		return Fail("validation.min",
			fmt.Sprintf("must have size of at least %s, got %s", formatRat(r.min), actual),
			map[string]any{"min": formatRat(r.min), "actual": actual},
		)
	case KindMax:
		return Fail("validation.max",
			fmt.Sprintf("must have size of at most %s, got %s", formatRat(r.max), actual),
			map[string]any{"max": formatRat(r.max), "actual": actual},
		)
	default:
		return Fail("validation.between",
			fmt.Sprintf("must have size between %s and %s, got %s", formatRat(r.min), formatRat(r.max), actual),
			map[string]any{"min": formatRat(r.min), "max": formatRat(r.max), "actual": actual},
		)
	}
}

// Size requires the resolved size to equal an integer target.
func Size(p Param) (Rule, error) {
	if !p.Present {
		return nil, fmt.Errorf("%w: size expects an integer", ErrMissingParam)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(p.Raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: size expects an integer, got %q", ErrInvalidParam, p.Raw)
	}
	target := new(big.Rat).SetInt64(n)
	return boundRule{kind: KindSize, min: target, max: target}, nil
}

// Min requires the resolved size to be at least the parameter.
func Min(p Param) (Rule, error) {
	bound, err := decimalParam(KindMin, p)
	if err != nil {
		return nil, err
	}
	return boundRule{kind: KindMin, min: bound}, nil
}

// Max requires the resolved size to be at most the parameter.
func Max(p Param) (Rule, error) {
	bound, err := decimalParam(KindMax, p)
	if err != nil {
		return nil, err
	}
	return boundRule{kind: KindMax, max: bound}, nil
}

// Between requires the resolved size to lie within "lo,hi", inclusive.
func Between(p Param) (Rule, error) {
	if !p.Present {
		return nil, fmt.Errorf("%w: between expects \"min,max\"", ErrMissingParam)
	}
	lo, hi, found := strings.Cut(p.Raw, ",")
	if !found {
		return nil, fmt.Errorf("%w: between expects \"min,max\", got %q", ErrInvalidParam, p.Raw)
	}
	min, ok := parseDecimal(lo)
	if !ok {
		return nil, fmt.Errorf("%w: between lower bound %q is not a number", ErrInvalidParam, lo)
	}
	max, ok := parseDecimal(hi)
	if !ok {
		return nil, fmt.Errorf("%w: between upper bound %q is not a number", ErrInvalidParam, hi)
	}
	if min.Cmp(max) > 0 {
		return nil, fmt.Errorf("%w: between lower bound %s exceeds upper bound %s", ErrInvalidParam, formatRat(min), formatRat(max))
	}
	return boundRule{kind: KindBetween, min: min, max: max}, nil
}

func decimalParam(k Kind, p Param) (*big.Rat, error) {
	if !p.Present {
		return nil, fmt.Errorf("%w: %s expects a number", ErrMissingParam, k)
	}
	n, ok := parseDecimal(p.Raw)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidParam, k, p.Raw)
	}
	return n, nil
}
