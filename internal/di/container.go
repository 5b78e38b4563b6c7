package di

import (
	"go.uber.org/dig"

	"github.com/shreyachillal24/webphish-detector/internal/config"
	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/factory"
	"github.com/shreyachillal24/webphish-detector/internal/logging"
	"github.com/shreyachillal24/webphish-detector/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSignalFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register classifier; a load failure here aborts startup
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}

	// Register WHOIS cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.WhoisCache, error) {
		return f.CreateWhoisCache()
	}); err != nil {
		return nil, err
	}

	// Register WHOIS client
	if err := container.Provide(func(f *factory.SignalFactory, whoisCache core.WhoisCache) (core.WhoisClient, error) {
		return f.CreateWhoisClient(whoisCache)
	}); err != nil {
		return nil, err
	}

	// Register page fetcher
	if err := container.Provide(func(f *factory.SignalFactory) (core.PageFetcher, error) {
		return f.CreatePageFetcher()
	}); err != nil {
		return nil, err
	}

	// Register probe engine
	if err := container.Provide(func(f *factory.SignalFactory, whois core.WhoisClient, fetcher core.PageFetcher) (core.SignalProber, error) {
		return f.CreateProbeEngine(whois, fetcher)
	}); err != nil {
		return nil, err
	}

	// Register feature extractor
	if err := container.Provide(func(f *factory.SignalFactory, whois core.WhoisClient) core.FeatureExtractor {
		return f.CreateFeatureExtractor(whois)
	}); err != nil {
		return nil, err
	}

	// Register risk-decision service
	if err := container.Provide(core.NewURLRiskService); err != nil {
		return nil, err
	}

	// Register URL filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.URLFilter, error) {
		return f.CreateURLFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
