package validator

import (
	"log/slog"

	"github.com/dmitrymomot/rulechain/pkg/rules"
)

// DefaultCacheSize is the number of compiled schemas kept by default.
const DefaultCacheSize = 128

type config struct {
	registry  *rules.Registry
	logger    *slog.Logger
	cacheSize int
}

// Option configures a Validator.
type Option func(*config)

// WithRegistry sets the registry chain tokens are resolved against.
func WithRegistry(r *rules.Registry) Option {
	if r == nil {
		panic("WithRegistry: nil registry")
	}
	return func(c *config) { c.registry = r }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCacheSize sets how many compiled schemas are kept. Zero disables caching.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("WithCacheSize: size must be >= 0")
	}
	return func(c *config) { c.cacheSize = n }
}
