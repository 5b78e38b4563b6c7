// Package xgb serves predictions from a pretrained gradient-boosting
// artifact. The artifact is produced offline by the training pipeline; this
// adapter only loads and queries it.
package xgb

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitryikh/leaves"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// ErrModelNotLoaded is returned when Predict is called against a classifier
// whose artifact was never loaded. This is a configuration defect, never a
// normal-operation failure.
var ErrModelNotLoaded = errors.New("classifier model not loaded")

// Classifier wraps a loaded XGBoost ensemble. The ensemble is read-only
// after load and safe for unsynchronized concurrent prediction.
type Classifier struct {
	model  *leaves.Ensemble
	path   string
	logger *zap.Logger
}

// New loads the model artifact from disk. A load failure here must abort
// startup; the engine never serves verdicts without a model.
func New(path string, logger *zap.Logger) (*Classifier, error) {
	model, err := leaves.XGEnsembleFromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier artifact %q: %w", path, err)
	}

	if nf := model.NFeatures(); nf > core.FeatureCount {
		return nil, fmt.Errorf("classifier artifact %q expects %d features, engine produces %d", path, nf, core.FeatureCount)
	}

	logger.Info("Loaded classifier artifact",
		zap.String("path", path),
		zap.String("model", model.Name()),
		zap.Int("trees", model.NEstimators()),
		zap.Int("features", model.NFeatures()))

	return &Classifier{
		model:  model,
		path:   path,
		logger: logger,
	}, nil
}

// Predict returns the binary label for a feature vector. The raw margin is
// folded through the logistic link; probability above 0.5 is phishing.
func (c *Classifier) Predict(vector core.FeatureVector) (int, error) {
	if c == nil || c.model == nil {
		return 0, ErrModelNotLoaded
	}

	margin := c.model.PredictSingle(vector[:], 0)
	probability := 1.0 / (1.0 + math.Exp(-margin))

	if probability > 0.5 {
		return 1, nil
	}
	return 0, nil
}
