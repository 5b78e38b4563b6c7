package factory

import (
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/adapters/pagefetch"
	"github.com/shreyachillal24/webphish-detector/internal/adapters/whoisage"
	"github.com/shreyachillal24/webphish-detector/internal/config"
	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/features"
	"github.com/shreyachillal24/webphish-detector/internal/probes"
)

// SignalFactory creates the external-signal side of the engine: the WHOIS
// client, the page fetcher, the probe engine and the feature extractor.
type SignalFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSignalFactory creates a new signal factory
func NewSignalFactory(cfg *config.Config, logger *zap.Logger) *SignalFactory {
	return &SignalFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateWhoisClient creates the caching WHOIS client
func (f *SignalFactory) CreateWhoisClient(whoisCache core.WhoisCache) (core.WhoisClient, error) {
	probeCfg, err := f.cfg.GetProbes()
	if err != nil {
		return nil, err
	}
	cacheCfg, err := f.cfg.GetCache()
	if err != nil {
		return nil, err
	}

	client := whoisage.NewClient(probeCfg.Timeout, f.logger)
	return whoisage.NewCachingClient(client, whoisCache, cacheCfg.TTL, cacheCfg.Enabled, f.logger), nil
}

// CreatePageFetcher creates the bounded page fetcher
func (f *SignalFactory) CreatePageFetcher() (core.PageFetcher, error) {
	probeCfg, err := f.cfg.GetProbes()
	if err != nil {
		return nil, err
	}
	return pagefetch.NewFetcher(probeCfg.Timeout, probeCfg.UserAgent, probeCfg.MaxBodyBytes, f.logger), nil
}

// CreateProbeEngine creates the signal probe engine
func (f *SignalFactory) CreateProbeEngine(whois core.WhoisClient, fetcher core.PageFetcher) (core.SignalProber, error) {
	probeCfg, err := f.cfg.GetProbes()
	if err != nil {
		return nil, err
	}
	return probes.NewEngine(whois, fetcher, probeCfg.Timeout, f.logger), nil
}

// CreateFeatureExtractor creates the lexical feature extractor
func (f *SignalFactory) CreateFeatureExtractor(whois core.WhoisClient) core.FeatureExtractor {
	return features.NewExtractor(whois, f.logger)
}
