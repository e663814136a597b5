// Package querycache memoizes candidate sets keyed on normalized query text.
//
// The ladder is pure and re-derivable, so memoization is safe; it lives at
// the caller layer rather than inside the engine. A nil store disables it.
package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/db"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

const keyPrefix = "discovery:candidates:"

// store is the consumer interface for the cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores assembled candidate sets in a key-value store with a TTL.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a candidate cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(s store, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: s, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// Get returns the memoized candidate set for a query, if any. Store errors
// degrade to a miss: the ladder simply runs again.
func (c *Cache) Get(ctx context.Context, queryText string) ([]selection.Candidate, bool) {
	data, err := c.store.Get(ctx, cacheKey(queryText))
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to read candidate cache", zap.Error(err))
		}
		c.incCache("miss")
		return nil, false
	}

	var cands []selection.Candidate
	if err := json.Unmarshal(data, &cands); err != nil {
		c.logger.Warn("Failed to decode cached candidates", zap.Error(err))
		c.incCache("miss")
		return nil, false
	}

	c.incCache("hit")
	return cands, true
}

// Put memoizes a candidate set. Failures are logged and swallowed; the
// response has already been computed.
func (c *Cache) Put(ctx context.Context, queryText string, cands []selection.Candidate) {
	data, err := json.Marshal(cands)
	if err != nil {
		c.logger.Warn("Failed to encode candidates for cache", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, cacheKey(queryText), data, c.ttl); err != nil {
		c.logger.Warn("Failed to write candidate cache", zap.Error(err))
	}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the normalized query text.
func cacheKey(queryText string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(queryText)), " ")
	h := sha256.Sum256([]byte(norm))
	return keyPrefix + hex.EncodeToString(h[:])
}
