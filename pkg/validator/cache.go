package validator

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key    string
	schema *Schema
}

// schemaCache is a thread-safe LRU of compiled schemas keyed by schemaKey.
type schemaCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newSchemaCache(capacity int) *schemaCache {
	return &schemaCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (c *schemaCache) get(key string) (*Schema, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.eviction.MoveToFront(elem)
	return elem.Value.(*cacheEntry).schema, true
}

func (c *schemaCache) put(key string, s *Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).schema = s
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, schema: s})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

func (c *schemaCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
