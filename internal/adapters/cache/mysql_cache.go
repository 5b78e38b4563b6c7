package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// MySQLCache is a MySQL implementation of the WhoisCache interface
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL WHOIS cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS whois_cache (
			domain VARCHAR(255) PRIMARY KEY,
			created_at TIMESTAMP NULL,
			resolved BOOLEAN,
			fetched_at TIMESTAMP NULL,
			expires_at TIMESTAMP NULL,
			INDEX idx_whois_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached record for a domain
func (c *MySQLCache) Get(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	var record core.WhoisRecord
	var createdAt, fetchedAt, expiresAt sql.NullTime

	err := c.db.QueryRowContext(ctx, `
		SELECT domain, created_at, resolved, fetched_at, expires_at
		FROM whois_cache
		WHERE domain = ? AND expires_at > NOW()
	`, domain).Scan(&record.Domain, &createdAt, &record.Resolved, &fetchedAt, &expiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query WHOIS cache: %w", err)
	}

	record.CreatedAt = createdAt.Time
	record.FetchedAt = fetchedAt.Time
	record.ExpiresAt = expiresAt.Time

	return &record, nil
}

// Set stores a record
func (c *MySQLCache) Set(ctx context.Context, record *core.WhoisRecord) error {
	_, err := c.db.ExecContext(ctx, `
		REPLACE INTO whois_cache (domain, created_at, resolved, fetched_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.Domain, record.CreatedAt, record.Resolved, record.FetchedAt, record.ExpiresAt)

	if err != nil {
		return fmt.Errorf("failed to insert WHOIS cache entry: %w", err)
	}
	return nil
}

// Delete removes a record
func (c *MySQLCache) Delete(ctx context.Context, domain string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM whois_cache
		WHERE domain = ?
	`, domain)

	if err != nil {
		return fmt.Errorf("failed to delete WHOIS cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired records
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM whois_cache
		WHERE expires_at <= NOW()
	`)

	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired WHOIS cache entries", zap.Int64("expired_count", rowsAffected))
	}

	return nil
}

// startCleanupTask starts a background task to clean up expired records
func (c *MySQLCache) startCleanupTask() {
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

// Stop stops the background cleanup task and closes the database connection
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
