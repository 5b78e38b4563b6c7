package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, "http", cfg.GetString("server.filter_type"))
	assert.Equal(t, "memory", cfg.GetString("cache.type"))
	assert.True(t, cfg.GetBool("cache.enabled"))
	assert.Equal(t, "info", cfg.GetString("logging.level"))
	assert.NotEmpty(t, cfg.GetString("model.path"))
}

func TestGetProbes(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	probes, err := cfg.GetProbes()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, probes.Timeout)
	assert.Equal(t, int64(1048576), probes.MaxBodyBytes)
	assert.NotEmpty(t, probes.UserAgent)
}

func TestGetCache(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	cache, err := cfg.GetCache()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cache.TTL)
	assert.Equal(t, time.Hour, cache.CleanupFrequency)
}

func TestGetProbesInvalidTimeout(t *testing.T) {
	v := NewEmptyViper()
	v.Set("probes.timeout", "not-a-duration")
	cfg := NewFromViper(v)

	_, err := cfg.GetProbes()
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("server.filter_type", "cli")
	v.Set("cache.type", "sqlite")
	cfg := NewFromViper(v)

	assert.Equal(t, "cli", cfg.GetServer().FilterType)

	cache, err := cfg.GetCache()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cache.Type)
}
