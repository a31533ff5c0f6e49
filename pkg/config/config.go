package config

import (
	"time"

	"github.com/dmitrymomot/rulechain/pkg/redis"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RULECHAIN_"

// Config is the runtime configuration of the rulechain service and CLI.
type Config struct {
	Env     string  `yaml:"env" env:"ENV" validate:"oneof=development staging production test"`
	Log     Log     `yaml:"log" envPrefix:"LOG_"`
	HTTP    HTTP    `yaml:"http" envPrefix:"HTTP_"`
	Cache   Cache   `yaml:"cache" envPrefix:"CACHE_"`
	Schemas Schemas `yaml:"schemas" envPrefix:"SCHEMAS_"`
}

type Log struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"omitempty,oneof=json text pretty"` // empty picks by Env
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"ADDR" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" validate:"gt=0"`
}

type Cache struct {
	Size int `yaml:"size" env:"SIZE" validate:"gte=0"` // 0 disables the compiled schema cache
}

// Schemas selects the schema store: Redis when Redis.URL is set, a directory
// when Dir is set, process memory otherwise.
type Schemas struct {
	Dir         string       `yaml:"dir" env:"DIR"`
	Redis       redis.Config `yaml:"redis" envPrefix:"REDIS_"`
	RedisPrefix string       `yaml:"redis_prefix" env:"REDIS_PREFIX"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Env: "development",
		Log: Log{Level: "info"},
		HTTP: HTTP{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Cache: Cache{Size: 128},
		Schemas: Schemas{
			Redis: redis.Config{
				RetryAttempts:  3,
				RetryInterval:  2 * time.Second,
				ConnectTimeout: 10 * time.Second,
			},
			RedisPrefix: "rulechain:schema:",
		},
	}
}
