// ABOUTME: In-memory session cache for translated suggestion pages.
// ABOUTME: Freecache TTL storage plus singleflight fetch deduplication.
package suggest

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coocood/freecache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a fetched page stays fresh for long-lived
// surfaces. Suggestions are discarded with the process; nothing here is
// persisted.
const DefaultCacheTTL = 15 * time.Minute

// Cache wraps a Fetcher with an in-memory TTL cache and deduplication of
// concurrent identical fetches. With sizeBytes <= 0 the cache is a
// pass-through (deduplication still applies).
type Cache struct {
	fetcher  Fetcher
	language int
	cache    *freecache.Cache
	ttl      time.Duration
	group    singleflight.Group
}

// NewCache creates a session cache in front of fetcher. language feeds
// the cache key so differently-configured clients never share entries.
func NewCache(fetcher Fetcher, language int, sizeBytes int, ttl time.Duration) *Cache {
	c := &Cache{fetcher: fetcher, language: language, ttl: ttl}
	if c.ttl <= 0 {
		c.ttl = DefaultCacheTTL
	}
	if sizeBytes > 0 {
		c.cache = freecache.NewCache(sizeBytes)
	}
	return c
}

// Suggestions returns the cached page for q when fresh, fetching it
// otherwise. Concurrent callers asking for the same page share one fetch.
// Errors are never cached.
func (c *Cache) Suggestions(ctx context.Context, q Query) ([]Suggestion, error) {
	key := q.cacheKey(c.language)

	if c.cache != nil {
		if data, err := c.cache.Get([]byte(key)); err == nil {
			var cached []Suggestion
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			// Undecodable entry: drop it and refetch.
			c.cache.Del([]byte(key))
		}
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		suggestions, err := c.fetcher.Suggestions(ctx, q)
		if err != nil {
			return nil, err
		}
		c.put(key, suggestions)
		return suggestions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Suggestion), nil
}

func (c *Cache) put(key string, suggestions []Suggestion) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := c.cache.Set([]byte(key), data, int(c.ttl.Seconds())); err != nil {
		slog.Debug("suggestion cache set failed", "error", err)
	}
}
