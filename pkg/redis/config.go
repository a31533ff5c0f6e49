package redis

import "time"

// Config describes how to reach the Redis server holding schema documents.
type Config struct {
	URL            string        `yaml:"url" env:"URL"`                         // redis://:password@localhost:6379/0
	RetryAttempts  int           `yaml:"retry_attempts" env:"RETRY_ATTEMPTS"`   // connection attempts before giving up
	RetryInterval  time.Duration `yaml:"retry_interval" env:"RETRY_INTERVAL"`   // pause between attempts
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT"` // bounds all attempts together
}
