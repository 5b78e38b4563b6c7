package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

var (
	// ErrNotFound is returned when no record exists for a domain
	ErrNotFound = errors.New("whois cache entry not found")
	// ErrExpired is returned when a record exists but has expired
	ErrExpired = errors.New("whois cache entry expired")
)

// MemoryCache is an in-memory implementation of the WhoisCache interface
type MemoryCache struct {
	records     map[string]*core.WhoisRecord
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMemoryCache creates a new in-memory WHOIS cache
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	cache := &MemoryCache{
		records:     make(map[string]*core.WhoisRecord),
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache
}

// Get retrieves a cached record for a domain
func (c *MemoryCache) Get(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[domain]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, ErrExpired
	}

	copied := *record
	return &copied, nil
}

// Set stores a record
func (c *MemoryCache) Set(ctx context.Context, record *core.WhoisRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *record
	c.records[record.Domain] = &copied
	return nil
}

// Delete removes a record
func (c *MemoryCache) Delete(ctx context.Context, domain string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.records, domain)
	return nil
}

// Cleanup removes expired records
func (c *MemoryCache) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expired := 0
	for domain, record := range c.records {
		if now.After(record.ExpiresAt) {
			delete(c.records, domain)
			expired++
		}
	}

	if expired > 0 {
		c.logger.Debug("Cleaned up expired WHOIS cache entries", zap.Int("expired_count", expired))
	}
	return nil
}

// startCleanupTask starts a background task to clean up expired records
func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up WHOIS cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task
func (c *MemoryCache) Stop() {
	close(c.stopCh)
}
