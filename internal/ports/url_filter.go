package ports

import (
	"context"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// URLFilter defines the interface for the serving side of the detector
type URLFilter interface {
	// ClassifyURL classifies a single URL and returns the verdict
	ClassifyURL(ctx context.Context, rawURL string) (*core.Verdict, error)

	// Start starts the filter service
	Start() error

	// Stop stops the filter service
	Stop() error
}
