package rules

// Kind identifies a rule family. The set is closed: every built-in rule has
// exactly one Kind and custom rules report KindCustom.
type Kind uint8

const (
	KindCustom Kind = iota
	KindRequired
	KindString
	KindInteger
	KindNumeric
	KindBinary
	KindOctal
	KindHex
	KindList
	KindSize
	KindMin
	KindMax
	KindBetween
	KindAlpha
	KindAlphaNum
	KindEmail
	KindIn
)

var kindTokens = [...]string{
	KindCustom:   "custom",
	KindRequired: "required",
	KindString:   "string",
	KindInteger:  "integer",
	KindNumeric:  "numeric",
	KindBinary:   "binary",
	KindOctal:    "octal",
	KindHex:      "hex",
	KindList:     "list",
	KindSize:     "size",
	KindMin:      "min",
	KindMax:      "max",
	KindBetween:  "between",
	KindAlpha:    "alpha",
	KindAlphaNum: "alpha_num",
	KindEmail:    "email",
	KindIn:       "in",
}

// String returns the token used for the kind in chain specifications.
func (k Kind) String() string {
	if int(k) < len(kindTokens) {
		return kindTokens[k]
	}
	return "unknown"
}

// Base reports the integer base a kind commits a value to. Numeric reports
// base 10 as well; callers tell it apart from Integer by the kind itself.
func (k Kind) Base() (int, bool) {
	switch k {
	case KindInteger, KindNumeric:
		return 10, true
	case KindBinary:
		return 2, true
	case KindOctal:
		return 8, true
	case KindHex:
		return 16, true
	}
	return 0, false
}

// IsCollection reports whether the kind makes sizes count elements.
func (k Kind) IsCollection() bool {
	return k == KindList
}

// Seen is the ordered list of kinds attached earlier in the same chain.
type Seen []Kind

// Has reports whether k occurs in s.
func (s Seen) Has(k Kind) bool {
	for _, seen := range s {
		if seen == k {
			return true
		}
	}
	return false
}

// FirstBase returns the earliest base-interpreting kind in chain order.
func (s Seen) FirstBase() (Kind, bool) {
	for _, k := range s {
		if _, ok := k.Base(); ok {
			return k, true
		}
	}
	return KindCustom, false
}

// HasCollection reports whether a collection-interpreting kind precedes the rule.
func (s Seen) HasCollection() bool {
	for _, k := range s {
		if k.IsCollection() {
			return true
		}
	}
	return false
}
