package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/adapters/filter"
	"github.com/shreyachillal24/webphish-detector/internal/config"
	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/ports"
)

// FilterFactory creates URL filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.URLRiskService
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(cfg *config.Config, logger *zap.Logger, service *core.URLRiskService) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateURLFilter creates a URL filter based on the configuration
func (f *FilterFactory) CreateURLFilter() (ports.URLFilter, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.FilterType {
	case "http":
		return filter.NewHTTPFilter(f.service, f.logger, serverCfg.ListenAddress), nil
	case "cli":
		return filter.NewCliFilter(f.service, f.logger, f.cfg.GetBool("cli.verbose"))
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", serverCfg.FilterType)
	}
}
