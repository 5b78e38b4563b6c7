package whoisage

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// CachingClient decorates a WhoisClient with a record cache. Cache failures
// are logged and ignored: the lookup proceeds uncached. Concurrent lookups
// for the same domain within one request (the age probe and the
// established-domain feature race for it) are collapsed to one query.
type CachingClient struct {
	inner   core.WhoisClient
	cache   core.WhoisCache
	ttl     time.Duration
	enabled bool
	logger  *zap.Logger
	group   singleflight.Group
}

// NewCachingClient creates a caching WHOIS client
func NewCachingClient(
	inner core.WhoisClient,
	cache core.WhoisCache,
	ttl time.Duration,
	enabled bool,
	logger *zap.Logger,
) *CachingClient {
	return &CachingClient{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		enabled: enabled,
		logger:  logger,
	}
}

// Lookup resolves a domain, consulting the cache first. Negative records
// (no creation date) are cached too so repeat misses stay cheap.
func (c *CachingClient) Lookup(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	if c.enabled {
		if record, err := c.cache.Get(ctx, domain); err == nil {
			c.logger.Debug("WHOIS cache hit", zap.String("domain", domain))
			return record, nil
		}
	}

	result, err, _ := c.group.Do(domain, func() (any, error) {
		record, err := c.inner.Lookup(ctx, domain)
		if err != nil {
			return nil, err
		}

		if c.enabled {
			record.ExpiresAt = time.Now().Add(c.ttl)
			if err := c.cache.Set(ctx, record); err != nil {
				c.logger.Error("Failed to update WHOIS cache",
					zap.String("domain", domain),
					zap.Error(err))
			}
		}
		return record, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*core.WhoisRecord), nil
}
