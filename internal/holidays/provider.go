package holidays

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Options assembles a cached holiday provider
type Options struct {
	BaseURL  string
	Country  string
	CacheTTL time.Duration
	// Timeout bounds one HTTP request to the holiday API.
	Timeout time.Duration
	// Redis, when set, shares cached years between processes.
	Redis *redis.Client
}

// NewProvider returns the HTTP client behind a Redis cache when a Redis
// client is given, or a process-local cache otherwise.
func NewProvider(opts Options, logger *zap.Logger) Provider {
	var clientOpts []ClientOption
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, WithHTTPClient(&http.Client{Timeout: opts.Timeout}))
	}
	client := NewClient(opts.BaseURL, opts.Country, clientOpts...)

	var cache Cache
	if opts.Redis != nil {
		cache = NewRedisCache(opts.Redis, client.Country(), opts.CacheTTL)
	} else {
		cache = NewMemoryCache(opts.CacheTTL)
	}
	return NewCachedProvider(client, cache, logger)
}
