package websearch

import (
	"context"
	"sync"
	"time"

	"kycagent/internal/kyc/models"
)

type memoryEntry struct {
	result    models.SearchResult
	expiresAt time.Time
}

// MemoryCache is the process-local cache used when Redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context, key string) (*models.SearchResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	result := cloneResult(entry.result)
	return &result, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, result *models.SearchResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{result: cloneResult(*result), expiresAt: m.now().Add(ttl)}
	return nil
}

func cloneResult(r models.SearchResult) models.SearchResult {
	r.Results = append([]models.SearchHit(nil), r.Results...)
	return r
}
