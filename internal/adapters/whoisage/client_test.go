package whoisage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/adapters/cache"
	"github.com/shreyachillal24/webphish-detector/internal/core"
)

func TestParseCreationDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "1997-09-15T04:00:00Z", time.Date(1997, 9, 15, 4, 0, 0, 0, time.UTC)},
		{"datetime", "1997-09-15 04:00:00", time.Date(1997, 9, 15, 4, 0, 0, 0, time.UTC)},
		{"date only", "1997-09-15", time.Date(1997, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"registrar style", "15-Sep-1997", time.Date(1997, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"dotted", "1997.09.15", time.Date(1997, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"padded", "  1997-09-15  ", time.Date(1997, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "soon", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCreationDate(tt.value))
		})
	}
}

// countingClient counts inner lookups so caching behavior is observable
type countingClient struct {
	record  *core.WhoisRecord
	err     error
	lookups int
}

func (c *countingClient) Lookup(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	c.lookups++
	if c.err != nil {
		return nil, c.err
	}
	copied := *c.record
	return &copied, nil
}

func newMemoryCache(t *testing.T) core.WhoisCache {
	t.Helper()
	c := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	t.Cleanup(c.Stop)
	return c
}

func TestCachingClientCachesLookups(t *testing.T) {
	inner := &countingClient{record: &core.WhoisRecord{
		Domain:    "example.com",
		CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Resolved:  true,
	}}
	client := NewCachingClient(inner, newMemoryCache(t), time.Hour, true, zap.NewNop())

	ctx := context.Background()
	first, err := client.Lookup(ctx, "example.com")
	require.NoError(t, err)
	second, err := client.Lookup(ctx, "example.com")
	require.NoError(t, err)

	assert.Equal(t, first.Domain, second.Domain)
	assert.Equal(t, 1, inner.lookups)
}

func TestCachingClientCachesNegativeRecords(t *testing.T) {
	inner := &countingClient{record: &core.WhoisRecord{Domain: "dateless.com"}}
	client := NewCachingClient(inner, newMemoryCache(t), time.Hour, true, zap.NewNop())

	ctx := context.Background()
	_, err := client.Lookup(ctx, "dateless.com")
	require.NoError(t, err)
	record, err := client.Lookup(ctx, "dateless.com")
	require.NoError(t, err)

	assert.False(t, record.Resolved)
	assert.Equal(t, 1, inner.lookups)
}

func TestCachingClientDisabled(t *testing.T) {
	inner := &countingClient{record: &core.WhoisRecord{Domain: "example.com", Resolved: true}}
	client := NewCachingClient(inner, newMemoryCache(t), time.Hour, false, zap.NewNop())

	ctx := context.Background()
	_, err := client.Lookup(ctx, "example.com")
	require.NoError(t, err)
	_, err = client.Lookup(ctx, "example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.lookups)
}

func TestCachingClientPropagatesErrors(t *testing.T) {
	inner := &countingClient{err: errors.New("registry unreachable")}
	client := NewCachingClient(inner, newMemoryCache(t), time.Hour, true, zap.NewNop())

	_, err := client.Lookup(context.Background(), "example.com")
	assert.Error(t, err)
}
