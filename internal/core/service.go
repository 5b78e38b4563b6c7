package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shreyachillal24/webphish-detector/internal/urlinfo"
)

// URLRiskService is the core risk-decision engine. It owns no mutable state
// of its own; the classifier handle behind the Classifier port is loaded
// once at startup and only ever read, so the service is safe for concurrent
// use without locks.
type URLRiskService struct {
	classifier Classifier
	prober     SignalProber
	extractor  FeatureExtractor
	logger     *zap.Logger
}

// NewURLRiskService creates a new risk-decision service
func NewURLRiskService(
	classifier Classifier,
	prober SignalProber,
	extractor FeatureExtractor,
	logger *zap.Logger,
) *URLRiskService {
	return &URLRiskService{
		classifier: classifier,
		prober:     prober,
		extractor:  extractor,
		logger:     logger,
	}
}

// ClassifyURL classifies a single URL. Malformed URLs short-circuit to an
// invalid verdict before any probe or the classifier runs. Probe failures
// degrade to neutral signals; a classifier failure is returned as an error
// and never silently becomes a legitimate verdict.
func (s *URLRiskService) ClassifyURL(ctx context.Context, rawURL string) (*Verdict, error) {
	rawURL = strings.TrimSpace(rawURL)

	if !urlinfo.Validate(rawURL) {
		s.logger.Debug("Rejected malformed URL", zap.String("url", rawURL))
		return &Verdict{
			URL:     rawURL,
			Label:   LabelInvalid,
			Score:   InvalidScore,
			Reasons: GenerateReasons(true, SignalSet{}),
			Diagnostics: map[string]any{
				"invalid":          true,
				"final_risk_score": InvalidScore,
			},
			AnalyzedAt: time.Now(),
		}, nil
	}

	signals := SignalSet{
		SuspiciousTLD: s.prober.SuspiciousTLD(rawURL).OrDefault(),
		NumericDomain: s.prober.NumericDomain(rawURL).OrDefault(),
		BrandRisk:     s.prober.BrandImpersonation(rawURL).OrDefault(),
		ActionDomain:  s.prober.ActionKeyword(rawURL).OrDefault(),
	}

	// The network-bound probes and the lexical extraction (whose last field
	// needs the same registration record as the age probe) are independent
	// functions of the immutable input URL, so they fan out. Probe errors
	// never surface here; each goroutine reports an outcome, not an error.
	var (
		ageOutcome    Outcome
		intentOutcome Outcome
		vector        FeatureVector
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ageOutcome = s.prober.DomainAge(gctx, rawURL)
		return nil
	})
	g.Go(func() error {
		intentOutcome = s.prober.HTMLIntent(gctx, rawURL)
		return nil
	})
	g.Go(func() error {
		vector = s.extractor.Extract(gctx, rawURL)
		return nil
	})
	_ = g.Wait()

	signals.YoungDomain = ageOutcome.OrDefault()
	signals.HTMLIntent = intentOutcome.OrDefault()

	mlFlag, err := s.classifier.Predict(vector)
	if err != nil {
		s.logger.Error("Classifier prediction failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return nil, fmt.Errorf("classifier prediction failed: %w", err)
	}
	signals.MLFlag = mlFlag

	label, score, matchedRule := Decide(signals)
	reasons := GenerateReasons(false, signals)

	s.logger.Info("Classified URL",
		zap.String("url", rawURL),
		zap.String("label", string(label)),
		zap.Float64("score", score),
		zap.String("matched_rule", matchedRule))

	return &Verdict{
		URL:     rawURL,
		Label:   label,
		Score:   score,
		Reasons: reasons,
		Diagnostics: map[string]any{
			"suspicious_tld":     signals.SuspiciousTLD,
			"numeric_domain":     signals.NumericDomain,
			"brand_risk":         signals.BrandRisk,
			"young_domain":       signals.YoungDomain,
			"young_domain_known": ageOutcome.Resolved,
			"html_intent":        signals.HTMLIntent,
			"html_intent_known":  intentOutcome.Resolved,
			"ml_flag":            signals.MLFlag,
			"action_domain":      signals.ActionDomain,
			"matched_rule":       matchedRule,
			"final_risk_score":   score,
		},
		AnalyzedAt: time.Now(),
	}, nil
}
