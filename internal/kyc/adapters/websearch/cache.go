package websearch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"kycagent/internal/kyc/models"
	"kycagent/internal/kyc/ports"
)

const DefaultCacheTTL = 10 * time.Minute

// Cache stores search answers by key. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*models.SearchResult, bool, error)
	Set(ctx context.Context, key string, result *models.SearchResult, ttl time.Duration) error
}

// CachingSearcher answers repeated (type, value) lookups from a cache. Cache
// failures are logged and fall through to the wrapped searcher.
type CachingSearcher struct {
	next  ports.Searcher
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachingSearcher(next ports.Searcher, cache Cache, ttl time.Duration, logger *slog.Logger) *CachingSearcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingSearcher{next: next, cache: cache, ttl: ttl, log: logger}
}

func (c *CachingSearcher) SearchEntity(ctx context.Context, entityType, value string) (*models.SearchResult, error) {
	key := CacheKey(entityType, value)

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "search cache read failed", "error", err)
	}
	if ok {
		return cached, nil
	}

	result, err := c.next.SearchEntity(ctx, entityType, value)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, result, c.ttl); err != nil {
		c.log.WarnContext(ctx, "search cache write failed", "error", err)
	}
	return result, nil
}

// CacheKey is stable across case and surrounding whitespace of the value.
func CacheKey(entityType, value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return "kyc:search:" + strings.TrimSpace(entityType) + ":" + hex.EncodeToString(sum[:])
}
