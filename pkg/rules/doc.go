// Package rules defines the rule capability used by validation chains, the
// closed set of built-in rule kinds, and the registry that maps chain tokens
// such as "hex" or "size" to rule constructors.
//
// A Rule is immutable once constructed. Check receives the value under
// validation together with Seen, the kinds attached earlier in the same
// chain, and returns an Outcome instead of mutating internal state. This lets
// context-aware rules change their interpretation based on the chain:
//
//	"integer|size:42"  // size compares the decimal value 42
//	"hex|size:42"      // size compares 0x2a
//	"list|size:3"      // size compares the element count
//	"string|size:9"    // size compares the character count
//
// # Size resolution
//
// Size, Min, Max and Between resolve a value through Measure, an ordered
// policy: a base-interpreting kind wins over a collection kind, which wins over
// a native number, a native length, and finally the length of the value's
// string form. When a chain attaches several base kinds before a size rule,
// the earliest one is used.
//
// # Registry
//
// Builtin returns a Registry holding every built-in kind. Custom rules are
// added with Register; they report KindCustom and are invisible to size
// resolution.
//
//	reg := rules.Builtin()
//	_ = reg.Register("even", rules.Custom(func(v any, _ rules.Seen) rules.Outcome {
//	    ...
//	}))
package rules
