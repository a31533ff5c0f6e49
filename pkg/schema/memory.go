package schema

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	schemas map[string]map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{schemas: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.schemas[name]
	if !ok {
		return nil, ErrSchemaNotFound
	}
	return clone(schema), nil
}

func (s *MemoryStore) Put(ctx context.Context, name string, schema map[string]string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schemas[name] = clone(schema)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schemas[name]; !ok {
		return ErrSchemaNotFound
	}
	delete(s.schemas, name)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.schemas)), nil
}
