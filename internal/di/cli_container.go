package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/config"
	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/factory"
	"github.com/shreyachillal24/webphish-detector/internal/logging"
	"github.com/shreyachillal24/webphish-detector/internal/ports"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Classifier flags
	ModelPath string

	// Probe flags
	ProbeTimeout string
	UserAgent    string
	NoCache      bool

	// Input flags
	URL        string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.ModelPath, "model", "/etc/phish-filter/phishing_model.bin", "Path to the pretrained classifier artifact")
	flag.StringVar(&flags.ProbeTimeout, "probe-timeout", "5s", "Timeout for WHOIS and page-fetch probes")
	flag.StringVar(&flags.UserAgent, "user-agent", "webphish-detector/1.0", "User-Agent for page fetches")
	flag.BoolVar(&flags.NoCache, "no-cache", false, "Disable the WHOIS record cache")

	flag.StringVar(&flags.URL, "url", "", "URL to classify (falls back to the first positional argument)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging and diagnostics output")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()

	if flags.URL == "" && flag.NArg() > 0 {
		flags.URL = flag.Arg(0)
	}

	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the one-shot CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		return createConfigFromFlags(flags), nil
	}); err != nil {
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

	// Register classifier
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}

	// Register WHOIS cache; flag-built configs pin this to the memory cache
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

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// CLI specific settings
	v.Set("server.filter_type", "cli")
	v.Set("cli.verbose", flags.Verbose)

	v.Set("model.path", flags.ModelPath)
	v.Set("probes.timeout", flags.ProbeTimeout)
	v.Set("probes.http_user_agent", flags.UserAgent)

	v.Set("cache.type", "memory")
	v.Set("cache.enabled", !flags.NoCache)

	return config.NewFromViper(v)
}
