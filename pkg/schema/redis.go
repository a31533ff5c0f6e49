package schema

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces schema keys.
const DefaultRedisPrefix = "rulechain:schema:"

// RedisStore keeps each schema as a YAML document under prefix+name.
type RedisStore struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// NewRedisStore returns a RedisStore. An empty prefix means DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{db: client, prefix: prefix, scanBatchSize: 500}
}

func (s *RedisStore) Get(ctx context.Context, name string) (map[string]string, error) {
	data, err := s.db.Get(ctx, s.prefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSchemaNotFound
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *RedisStore) Put(ctx context.Context, name string, schema map[string]string) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := Encode(clone(schema))
	if err != nil {
		return err
	}
	return s.db.Set(ctx, s.prefix+name, data, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.db.Del(ctx, s.prefix+name).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSchemaNotFound
	}
	return nil
}

// List uses SCAN so large keyspaces do not block the server.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var (
		names  []string
		cursor uint64
	)
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range batch {
			names = append(names, strings.TrimPrefix(key, s.prefix))
		}
		if cursor = next; cursor == 0 {
			break
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
