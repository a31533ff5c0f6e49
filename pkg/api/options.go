package api

import (
	"log/slog"

	"github.com/dmitrymomot/rulechain/pkg/httpserver"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 1 << 20

type config struct {
	logger       *slog.Logger
	checks       []httpserver.Check
	maxBodyBytes int64
}

// Option configures a Handler.
type Option func(*config)

// WithLogger sets the request logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReadinessCheck adds a probe to GET /health/ready.
func WithReadinessCheck(c httpserver.Check) Option {
	if c.Name == "" || c.Fn == nil {
		panic("WithReadinessCheck: check needs a name and a function")
	}
	return func(cfg *config) { cfg.checks = append(cfg.checks, c) }
}

// WithMaxBodyBytes caps request bodies at n bytes.
func WithMaxBodyBytes(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodyBytes: limit must be > 0")
	}
	return func(c *config) { c.maxBodyBytes = n }
}
