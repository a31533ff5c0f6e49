package rules_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/rules"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		seen  rules.Seen
		want  int64
	}{
		{"decimal integer context", "42", rules.Seen{rules.KindInteger}, 42},
		{"binary context", "0b101010", rules.Seen{rules.KindBinary}, 42},
		{"octal context", "0o52", rules.Seen{rules.KindOctal}, 42},
		{"hex context", "0x2a", rules.Seen{rules.KindHex}, 42},
		{"hex context without prefix", "2A", rules.Seen{rules.KindHex}, 42},
		{"signed decimal integer context", " -42 ", rules.Seen{rules.KindInteger}, -42},
		{"numeric context", "42.0", rules.Seen{rules.KindNumeric}, 42},
		{"integer context with native integral float", 4.0, rules.Seen{rules.KindInteger}, 4},
		{"integer context with json number", json.Number("42"), rules.Seen{rules.KindInteger}, 42},
		{"list context counts elements", []string{"a", "b", "c"}, rules.Seen{rules.KindList}, 3},
		{"list context counts map entries", map[string]int{"a": 1}, rules.Seen{rules.KindList}, 1},
		{"base context wins over list context", "0x10", rules.Seen{rules.KindList, rules.KindHex}, 16},
		{"first base kind in chain order wins", "10", rules.Seen{rules.KindOctal, rules.KindHex}, 8},
		{"first base kind in chain order wins reversed", "10", rules.Seen{rules.KindHex, rules.KindOctal}, 16},
		{"string context uses character length", "something", rules.Seen{rules.KindString}, 9},
		{"no context uses native number", 42, nil, 42},
		{"no context uses json number value", json.Number("7"), nil, 7},
		{"no context uses string length", "something", nil, 9},
		{"no context uses slice length", []int{1, 2}, nil, 2},
		{"characters are counted after normalization", "été", nil, 3},
		{"multibyte characters count once", "日本語", nil, 3},
		{"bytes count as length", []byte{1, 2, 3, 4}, nil, 4},
		{"other values use string form length", struct{ A int }{1}, nil, 3},
		{"booleans use string form length", true, nil, 4},
		{"custom kinds do not change interpretation", "abc", rules.Seen{rules.KindCustom}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := rules.Measure(tc.value, tc.seen)
			require.True(t, ok)
			assert.Equal(t, 0, got.Cmp(big.NewRat(tc.want, 1)), "got %s", got.RatString())
		})
	}

	t.Run("native fractional numbers keep their value", func(t *testing.T) {
		got, ok := rules.Measure(3.5, nil)
		require.True(t, ok)
		assert.Equal(t, "7/2", got.RatString())
	})

	t.Run("large hexadecimal values are exact", func(t *testing.T) {
		got, ok := rules.Measure("0xffffffffffffffffffffffff", rules.Seen{rules.KindHex})
		require.True(t, ok)
		want, _ := new(big.Int).SetString("ffffffffffffffffffffffff", 16)
		assert.Equal(t, 0, got.Num().Cmp(want))
	})

	unresolved := []struct {
		name  string
		value any
		seen  rules.Seen
	}{
		{"nil value", nil, nil},
		{"text that is not in the context base", "0x2g", rules.Seen{rules.KindHex}},
		{"signed text under hex context", "-0x2a", rules.Seen{rules.KindHex}},
		{"padded text under binary context", " 101", rules.Seen{rules.KindBinary}},
		{"native number under a non decimal base", 42, rules.Seen{rules.KindHex}},
		{"fractional number under integer context", 4.5, rules.Seen{rules.KindInteger}},
		{"boolean under numeric context", true, rules.Seen{rules.KindNumeric}},
		{"string under list context", "abc", rules.Seen{rules.KindList}},
	}
	for _, tc := range unresolved {
		t.Run("cannot resolve "+tc.name, func(t *testing.T) {
			got, ok := rules.Measure(tc.value, tc.seen)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestSize(t *testing.T) {
	t.Parallel()

	t.Run("integer context accepts only the target value", func(t *testing.T) {
		rule := build(t, "size", "42")
		seen := rules.Seen{rules.KindInteger}
		assert.True(t, rule.Check("42", seen).Passed)

		out := rule.Check("43", seen)
		assert.False(t, out.Passed)
		assert.Equal(t, "must have size 42, got 43", out.Message)
		assert.Equal(t, "validation.size", out.TranslationKey)
		assert.Equal(t, map[string]any{"size": "42", "actual": "43"}, out.TranslationValues)
	})

	t.Run("hex context accepts 0x2a and rejects 0x2b", func(t *testing.T) {
		rule := build(t, "size", "42")
		seen := rules.Seen{rules.KindHex}
		assert.True(t, rule.Check("0x2a", seen).Passed)
		assert.False(t, rule.Check("0x2b", seen).Passed)
	})

	t.Run("list context compares element count", func(t *testing.T) {
		seen := rules.Seen{rules.KindList}
		list := []any{"a", "b", "c"}
		assert.True(t, build(t, "size", "3").Check(list, seen).Passed)
		assert.False(t, build(t, "size", "4").Check(list, seen).Passed)
	})

	t.Run("unresolvable values fail with the value type", func(t *testing.T) {
		out := build(t, "size", "3").Check("zz", rules.Seen{rules.KindHex})
		assert.False(t, out.Passed)
		assert.Equal(t, `could not determine size of "zz" (type string)`, out.Message)
		assert.Equal(t, "validation.size_unresolved", out.TranslationKey)

		out = build(t, "size", "3").Check(nil, nil)
		assert.Equal(t, "could not determine size of <nil> (type <nil>)", out.Message)
	})

	t.Run("fractional sizes are reported as decimals", func(t *testing.T) {
		out := build(t, "size", "3").Check(3.25, nil)
		assert.Equal(t, "must have size 3, got 3.25", out.Message)
	})
}

func TestBounds(t *testing.T) {
	t.Parallel()

	t.Run("min", func(t *testing.T) {
		rule := build(t, "min", "3")
		assert.True(t, rule.Check("abc", nil).Passed)
		assert.False(t, rule.Check("ab", nil).Passed)
		assert.Equal(t, "must have size of at least 3, got 2", rule.Check("ab", nil).Message)
	})

	t.Run("max with decimal bound", func(t *testing.T) {
		rule := build(t, "max", "2.5")
		assert.True(t, rule.Check(2.5, nil).Passed)
		assert.False(t, rule.Check("3", rules.Seen{rules.KindNumeric}).Passed)
		assert.Equal(t, "must have size of at most 2.5, got 3", rule.Check(3, nil).Message)
	})

	t.Run("between is inclusive", func(t *testing.T) {
		rule := build(t, "between", "2,4")
		seen := rules.Seen{rules.KindInteger}
		assert.True(t, rule.Check("2", seen).Passed)
		assert.True(t, rule.Check("4", seen).Passed)
		assert.False(t, rule.Check("5", seen).Passed)
		assert.Equal(t, "must have size between 2 and 4, got 5", rule.Check("5", seen).Message)
		assert.Equal(t, rules.KindBetween, rule.Kind())
	})
}
