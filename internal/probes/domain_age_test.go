package probes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

type stubWhois struct {
	record *core.WhoisRecord
	err    error
}

func (s *stubWhois) Lookup(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func TestDomainAgeYoung(t *testing.T) {
	whois := &stubWhois{record: &core.WhoisRecord{
		Domain:    "fresh.com",
		CreatedAt: time.Now().AddDate(0, 0, -5),
		Resolved:  true,
	}}
	e := NewEngine(whois, nil, time.Second, zap.NewNop())

	out := e.DomainAge(context.Background(), "http://fresh.com/")
	assert.True(t, out.Resolved)
	assert.Equal(t, 1, out.Value)
}

func TestDomainAgeEstablished(t *testing.T) {
	whois := &stubWhois{record: &core.WhoisRecord{
		Domain:    "old.com",
		CreatedAt: time.Now().AddDate(-3, 0, 0),
		Resolved:  true,
	}}
	e := NewEngine(whois, nil, time.Second, zap.NewNop())

	out := e.DomainAge(context.Background(), "http://old.com/")
	assert.True(t, out.Resolved)
	assert.Equal(t, 0, out.Value)
}

func TestDomainAgeBoundary(t *testing.T) {
	// 30 days exactly is not young
	whois := &stubWhois{record: &core.WhoisRecord{
		Domain:    "edge.com",
		CreatedAt: time.Now().AddDate(0, 0, -30).Add(-time.Hour),
		Resolved:  true,
	}}
	e := NewEngine(whois, nil, time.Second, zap.NewNop())

	out := e.DomainAge(context.Background(), "http://edge.com/")
	assert.Equal(t, 0, out.OrDefault())
}

func TestDomainAgeUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		whois *stubWhois
		url   string
	}{
		{"lookup error", &stubWhois{err: errors.New("whois down")}, "http://example.com/"},
		{"no creation date", &stubWhois{record: &core.WhoisRecord{Domain: "example.com"}}, "http://example.com/"},
		{"no registrable domain", &stubWhois{}, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.whois, nil, time.Second, zap.NewNop())
			out := e.DomainAge(context.Background(), tt.url)
			assert.False(t, out.Resolved)
			assert.Equal(t, 0, out.OrDefault())
		})
	}
}
