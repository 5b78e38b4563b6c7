// Package probes implements the external-signal heuristics. Every probe is
// independent, carries its own timeout, and reports failures as an
// unavailable outcome; a probe can never escalate risk by failing.
package probes

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// Engine runs the signal probes against a URL
type Engine struct {
	whois   core.WhoisClient
	fetcher core.PageFetcher
	timeout time.Duration
	logger  *zap.Logger
}

// NewEngine creates a new probe engine
func NewEngine(whois core.WhoisClient, fetcher core.PageFetcher, timeout time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		whois:   whois,
		fetcher: fetcher,
		timeout: timeout,
		logger:  logger,
	}
}

// probeContext bounds a single network probe
func (e *Engine) probeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.timeout)
}
