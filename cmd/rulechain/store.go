package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rulechain/pkg/config"
	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/redis"
	"github.com/dmitrymomot/rulechain/pkg/schema"
)

// openStore picks the schema store configured in cfg. The returned close
// function is never nil.
func openStore(ctx context.Context, cfg config.Schemas, log *slog.Logger) (schema.Store, []httpserver.Check, func(), error) {
	switch {
	case cfg.Redis.URL != "":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, func() {}, err
		}
		log.Info("schema store ready", logger.Component("redis"))
		checks := []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
		return schema.NewRedisStore(client, cfg.RedisPrefix), checks, func() { _ = client.Close() }, nil

	case cfg.Dir != "":
		store, err := schema.NewDirStore(cfg.Dir)
		if err != nil {
			return nil, nil, func() {}, err
		}
		log.Info("schema store ready", logger.Component("dir"), slog.String("dir", cfg.Dir))
		return store, nil, func() {}, nil

	default:
		log.Info("schema store ready", logger.Component("memory"))
		return schema.NewMemoryStore(), nil, func() {}, nil
	}
}
