package rules

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Resolver maps chain tokens to rule constructors.
type Resolver interface {
	Resolve(token string) (Constructor, error)
}

// Registry is a token to constructor table. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

var builtins = map[Kind]Constructor{
	KindRequired: noParam(requiredRule{}),
	KindString:   noParam(stringRule{}),
	KindInteger:  noParam(integerRule{}),
	KindNumeric:  noParam(numericRule{}),
	KindBinary:   noParam(binaryRule),
	KindOctal:    noParam(octalRule),
	KindHex:      noParam(hexRule),
	KindList:     noParam(listRule{}),
	KindSize:     Size,
	KindMin:      Min,
	KindMax:      Max,
	KindBetween:  Between,
	KindAlpha:    noParam(patternRule{kind: KindAlpha, pattern: alphaRegex, expect: "letters"}),
	KindAlphaNum: noParam(patternRule{kind: KindAlphaNum, pattern: alphanumericRegex, expect: "letters and digits"}),
	KindEmail:    noParam(emailRule{}),
	KindIn:       In,
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Builtin returns a new registry holding every built-in kind under its token.
func Builtin() *Registry {
	r := NewRegistry()
	for k, ctor := range builtins {
		r.ctors[k.String()] = ctor
	}
	return r
}

// Register adds a constructor under token.
func (r *Registry) Register(token string, ctor Constructor) error {
	if token == "" || ctor == nil || strings.ContainsFunc(token, func(c rune) bool {
		return c == '|' || c == ':' || unicode.IsSpace(c)
	}) {
		return fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[token]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, token)
	}
	r.ctors[token] = ctor
	return nil
}

// Resolve looks up token exactly, case-sensitively.
func (r *Registry) Resolve(token string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, token)
	}
	return ctor, nil
}

// Tokens returns the registered tokens in sorted order.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := make([]string, 0, len(r.ctors))
	for token := range r.ctors {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)
	return tokens
}
