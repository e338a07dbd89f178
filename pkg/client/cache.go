package client

import (
	"strings"
	"sync"
	"time"
)

const defaultStaleTime = 5 * time.Minute

type cacheEntry struct {
	data    []byte
	expires time.Time
}

// queryCache is a small stale-time cache for GET payloads. Entries are keyed
// by path+query and stay fresh for staleTime; mutations invalidate whole
// path prefixes so every cached page of a list drops at once.
type queryCache struct {
	mu        sync.RWMutex
	staleTime time.Duration
	entries   map[string]cacheEntry
}

func newQueryCache(staleTime time.Duration) *queryCache {
	return &queryCache{
		staleTime: staleTime,
		entries:   make(map[string]cacheEntry),
	}
}

func (q *queryCache) get(key string) ([]byte, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	e, ok := q.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.data, true
}

func (q *queryCache) set(key string, data []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[key] = cacheEntry{data: data, expires: time.Now().Add(q.staleTime)}
}

func (q *queryCache) invalidatePrefix(prefix string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key := range q.entries {
		if strings.HasPrefix(key, prefix) {
			delete(q.entries, key)
		}
	}
}
