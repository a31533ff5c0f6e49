package rules

import (
	"encoding/json"
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Exponents are capped so a crafted "1e999999999" cannot allocate a huge rational.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d{1,4})?$`)

func basePrefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	}
	return ""
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 99
}

// parseInteger parses s as an integer in base. Decimal text may carry
// surrounding whitespace and a leading sign; binary, octal and hex text is
// digits only, after an optional prefix (0b, 0o, 0x in any case).
func parseInteger(s string, base int) (*big.Int, bool) {
	if base != 10 {
		return parseDigits(s, base)
	}
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, ok := parseDigits(s, base)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}

func parseDigits(s string, base int) (*big.Int, bool) {
	if prefix := basePrefix(base); prefix != "" && len(s) >= 2 && strings.EqualFold(s[:2], prefix) {
		s = s[2:]
	}
	if s == "" {
		return nil, false
	}
	for _, r := range s {
		if digitValue(r) >= base {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, base)
}

func parseDecimal(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	if !decimalRegex.MatchString(s) {
		return nil, false
	}
	return new(big.Rat).SetString(s)
}

// asText returns the textual form of string-like values.
func asText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case json.Number:
		return v.String(), true
	}
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func isNumberText(value any) bool {
	_, ok := value.(json.Number)
	return ok
}

// nativeNumber converts Go numeric kinds and json.Number to a rational.
func nativeNumber(value any) (*big.Rat, bool) {
	if n, ok := value.(json.Number); ok {
		return parseDecimal(n.String())
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		r := new(big.Rat).SetFloat64(rv.Float())
		return r, r != nil
	}
	return nil, false
}

// charCount counts characters of the NFC form so composed and decomposed
// spellings of the same text have the same size.
func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func collectionLength(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func nativeLength(value any) (int, bool) {
	switch v := value.(type) {
	case []byte:
		return len(v), true
	case json.Number:
		return 0, false
	}
	if s, ok := asText(value); ok {
		return charCount(s), true
	}
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.Chan {
		return rv.Len(), true
	}
	return collectionLength(value)
}
