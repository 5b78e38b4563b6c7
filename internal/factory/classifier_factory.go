package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/adapters/xgb"
	"github.com/shreyachillal24/webphish-detector/internal/config"
	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// ClassifierFactory creates the statistical classifier
type ClassifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClassifier loads the pretrained artifact. Any failure here is fatal
// to startup; the engine must not serve without a model.
func (f *ClassifierFactory) CreateClassifier() (core.Classifier, error) {
	modelCfg := f.cfg.GetModel()
	if modelCfg.Path == "" {
		return nil, fmt.Errorf("model path is not configured")
	}
	return xgb.New(modelCfg.Path, f.logger)
}
