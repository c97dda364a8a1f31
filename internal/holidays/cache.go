package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a fetched year stays cached
const DefaultCacheTTL = 24 * time.Hour

// Cache stores holiday lists per year
type Cache interface {
	Get(ctx context.Context, year int) ([]models.PublicHoliday, bool, error)
	Set(ctx context.Context, year int, holidays []models.PublicHoliday) error
}

type memoryEntry struct {
	holidays []models.PublicHoliday
	expires  time.Time
}

// MemoryCache is a process-local Cache with expiry
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[int]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-process cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[int]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached holidays for year if present and not expired
func (c *MemoryCache) Get(_ context.Context, year int) ([]models.PublicHoliday, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[year]
	if !ok || !c.now().Before(e.expires) {
		return nil, false, nil
	}
	return e.holidays, true, nil
}

// Set stores holidays for year
func (c *MemoryCache) Set(_ context.Context, year int, holidays []models.PublicHoliday) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[year] = memoryEntry{holidays: holidays, expires: c.now().Add(c.ttl)}
	return nil
}

// RedisCache shares fetched years between server instances
type RedisCache struct {
	client  *redis.Client
	prefix  string
	country string
	ttl     time.Duration
}

// NewRedisCache creates a Redis-backed cache. Keys are namespaced by country.
func NewRedisCache(client *redis.Client, country string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, prefix: "holidays", country: country, ttl: ttl}
}

func (c *RedisCache) key(year int) string {
	return fmt.Sprintf("%s:%s:%d", c.prefix, c.country, year)
}

// Get returns the cached holidays for year
func (c *RedisCache) Get(ctx context.Context, year int) ([]models.PublicHoliday, bool, error) {
	raw, err := c.client.Get(ctx, c.key(year)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read holiday cache: %w", err)
	}
	var holidays []models.PublicHoliday
	if err := json.Unmarshal(raw, &holidays); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached holidays: %w", err)
	}
	return holidays, true, nil
}

// Set stores holidays for year with the cache TTL
func (c *RedisCache) Set(ctx context.Context, year int, holidays []models.PublicHoliday) error {
	raw, err := json.Marshal(holidays)
	if err != nil {
		return fmt.Errorf("failed to encode holidays: %w", err)
	}
	if err := c.client.Set(ctx, c.key(year), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write holiday cache: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CachedProvider serves years from a Cache and falls back to the wrapped
// Provider on a miss. Cache errors are logged and treated as misses.
type CachedProvider struct {
	next   Provider
	cache  Cache
	logger *zap.Logger
}

// NewCachedProvider wraps next with cache
func NewCachedProvider(next Provider, cache Cache, logger *zap.Logger) *CachedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{next: next, cache: cache, logger: logger}
}

// PublicHolidays returns the holidays of year, consulting the cache first
func (p *CachedProvider) PublicHolidays(ctx context.Context, year int) ([]models.PublicHoliday, error) {
	cached, ok, err := p.cache.Get(ctx, year)
	if err != nil {
		p.logger.Warn("holiday_cache_read_failed", zap.Int("year", year), zap.Error(err))
	} else if ok {
		p.logger.Debug("holiday_cache_hit", zap.Int("year", year))
		return cached, nil
	}

	holidays, err := p.next.PublicHolidays(ctx, year)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, year, holidays); err != nil {
		p.logger.Warn("holiday_cache_write_failed", zap.Int("year", year), zap.Error(err))
	}
	return holidays, nil
}
