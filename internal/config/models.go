package config

import (
	"fmt"
	"time"
)

// ServerConfig represents the serving-side configuration
type ServerConfig struct {
	FilterType    string
	ListenAddress string
}

// ModelConfig represents the classifier artifact configuration
type ModelConfig struct {
	Path string
}

// ProbesConfig represents the external-signal probe configuration
type ProbesConfig struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

// CacheConfig represents the WHOIS cache configuration
type CacheConfig struct {
	Type             string
	Enabled          bool
	TTL              time.Duration
	CleanupFrequency time.Duration
	SQLitePath       string
	MySQLDSN         string
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FilterType:    c.GetString("server.filter_type"),
		ListenAddress: c.GetString("server.listen_address"),
	}
}

// GetModel returns the model configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		Path: c.GetString("model.path"),
	}
}

// GetProbes returns the probe configuration
func (c *Config) GetProbes() (ProbesConfig, error) {
	timeout, err := c.GetDuration("probes.timeout")
	if err != nil {
		return ProbesConfig{}, fmt.Errorf("invalid probe timeout: %w", err)
	}
	return ProbesConfig{
		Timeout:      timeout,
		UserAgent:    c.GetString("probes.http_user_agent"),
		MaxBodyBytes: c.GetInt64("probes.max_body_bytes"),
	}, nil
}

// GetCache returns the cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, fmt.Errorf("invalid cache TTL: %w", err)
	}
	cleanupFreq, err := c.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return CacheConfig{}, fmt.Errorf("invalid cache cleanup frequency: %w", err)
	}
	return CacheConfig{
		Type:             c.GetString("cache.type"),
		Enabled:          c.GetBool("cache.enabled"),
		TTL:              ttl,
		CleanupFrequency: cleanupFreq,
		SQLitePath:       c.GetString("cache.sqlite_path"),
		MySQLDSN:         c.GetString("cache.mysql_dsn"),
	}, nil
}
