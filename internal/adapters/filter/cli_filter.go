package filter

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// CliFilter implements a command-line interface for URL classification
type CliFilter struct {
	service *core.URLRiskService
	logger  *zap.Logger
	verbose bool
}

// NewCliFilter creates a new CLI filter
func NewCliFilter(service *core.URLRiskService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ClassifyURL classifies a URL and displays the results
func (f *CliFilter) ClassifyURL(ctx context.Context, rawURL string) (*core.Verdict, error) {
	f.logger.Debug("Classifying URL", zap.String("url", rawURL))

	fmt.Printf("\n=== URL ===\n%s\n\n", rawURL)
	fmt.Printf("=== Analysis ===\n")

	startTime := time.Now()
	verdict, err := f.service.ClassifyURL(ctx, rawURL)
	if err != nil {
		f.logger.Error("Failed to classify URL", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return nil, err
	}
	duration := time.Since(startTime)

	fmt.Printf("Verdict:    %s\n", verdict.Label)
	fmt.Printf("Risk score: %.2f\n", verdict.Score)
	fmt.Printf("Took:       %s\n\n", duration.Round(time.Millisecond))

	fmt.Printf("=== Reasons ===\n")
	for _, reason := range verdict.Reasons {
		fmt.Printf("- %s\n", reason)
	}

	if f.verbose {
		fmt.Printf("\n=== Diagnostics ===\n")
		keys := make([]string, 0, len(verdict.Diagnostics))
		for k := range verdict.Diagnostics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%-20s %v\n", k, verdict.Diagnostics[k])
		}
	}
	fmt.Println()

	return verdict, nil
}

// Start is a no-op for the CLI filter
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *CliFilter) Stop() error {
	return nil
}
