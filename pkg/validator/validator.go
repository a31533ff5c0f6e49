package validator

import (
	"log/slog"

	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/rules"
)

// Validator compiles schemas and validates requests against them. It holds
// no per-request state and is safe for concurrent use.
type Validator struct {
	registry *rules.Registry
	logger   *slog.Logger
	cache    *schemaCache
}

// New returns a Validator using the built-in registry unless overridden.
func New(opts ...Option) *Validator {
	cfg := &config{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = rules.Builtin()
	}
	if cfg.logger == nil {
		cfg.logger = logger.Noop()
	}

	v := &Validator{registry: cfg.registry, logger: cfg.logger}
	if cfg.cacheSize > 0 {
		v.cache = newSchemaCache(cfg.cacheSize)
	}
	return v
}

// Registry returns the registry used to resolve chain tokens.
func (v *Validator) Registry() *rules.Registry {
	return v.registry
}

// Compile compiles schema, reusing a cached compilation when available.
func (v *Validator) Compile(schema map[string]string) (*Schema, error) {
	key := schemaKey(schema)
	if v.cache != nil {
		if s, ok := v.cache.get(key); ok {
			return s, nil
		}
	}

	s, err := Compile(schema, v.registry)
	if err != nil {
		v.logger.Warn("schema rejected", logger.Fields(len(schema)), logger.Error(err))
		return nil, err
	}
	v.logger.Debug("schema compiled", logger.Fields(len(schema)))

	if v.cache != nil {
		v.cache.put(key, s)
	}
	return s, nil
}

// Validate compiles schema and validates request against it. A non-nil error
// is always a configuration error and is returned before request is read;
// validation failures are reported in the Result only.
func (v *Validator) Validate(request map[string]any, schema map[string]string) (Result, error) {
	s, err := v.Compile(schema)
	if err != nil {
		return Result{}, err
	}

	res := s.Validate(request)
	if !res.OK {
		v.logger.Debug("request rejected",
			logger.Fields(len(schema)),
			slog.Any("failed", res.Errors.Failed()),
		)
	}
	return res, nil
}
