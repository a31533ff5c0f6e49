package rules

import (
	"fmt"
	"math/big"
	"strings"
)

// Measure resolves the size of value under the kinds seen earlier in the
// chain. The first applicable row wins:
//
//  1. a base-interpreting kind (integer, numeric, binary, octal, hex): the
//     value converted in that base; with several, the earliest in the chain
//  2. a collection kind (list): the element count
//  3. a native number: the number itself
//  4. a native length: characters of a string, elements of a slice or map
//  5. the character count of the value's string form
//
// It reports false when no row can produce a size.
func Measure(value any, seen Seen) (*big.Rat, bool) {
	if value == nil {
		return nil, false
	}
	if k, ok := seen.FirstBase(); ok {
		return measureInBase(value, k)
	}
	if seen.HasCollection() {
		n, ok := collectionLength(value)
		if !ok {
			return nil, false
		}
		return ratInt(n), true
	}
	if n, ok := nativeNumber(value); ok {
		return n, true
	}
	if n, ok := nativeLength(value); ok {
		return ratInt(n), true
	}
	return ratInt(charCount(fmt.Sprint(value))), true
}

func measureInBase(value any, k Kind) (*big.Rat, bool) {
	if s, ok := asText(value); ok {
		if k == KindNumeric {
			return parseDecimal(s)
		}
		base, _ := k.Base()
		n, ok := parseInteger(s, base)
		if !ok {
			return nil, false
		}
		return new(big.Rat).SetInt(n), true
	}

	// Non-text numbers carry no digits to reinterpret in another base.
	n, ok := nativeNumber(value)
	if !ok {
		return nil, false
	}
	switch {
	case k == KindNumeric:
		return n, true
	case k == KindInteger && n.IsInt():
		return n, true
	}
	return nil, false
}

func ratInt(n int) *big.Rat {
	return new(big.Rat).SetInt64(int64(n))
}

// formatRat renders integers exactly and fractions as trimmed decimals.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := strings.TrimRight(r.FloatString(6), "0")
	return strings.TrimSuffix(s, ".")
}
