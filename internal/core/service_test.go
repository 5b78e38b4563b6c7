package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClassifier returns a fixed label or error
type stubClassifier struct {
	label int
	err   error
	calls int
}

func (s *stubClassifier) Predict(vector FeatureVector) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.label, nil
}

// stubProber returns fixed outcomes per signal
type stubProber struct {
	age    Outcome
	intent Outcome
	brand  Outcome
	num    Outcome
	tld    Outcome
	action Outcome
}

func (s *stubProber) DomainAge(ctx context.Context, rawURL string) Outcome  { return s.age }
func (s *stubProber) HTMLIntent(ctx context.Context, rawURL string) Outcome { return s.intent }
func (s *stubProber) BrandImpersonation(rawURL string) Outcome              { return s.brand }
func (s *stubProber) NumericDomain(rawURL string) Outcome                   { return s.num }
func (s *stubProber) SuspiciousTLD(rawURL string) Outcome                   { return s.tld }
func (s *stubProber) ActionKeyword(rawURL string) Outcome                   { return s.action }

// neutralProber answers every probe with a resolved zero
func neutralProber() *stubProber {
	return &stubProber{
		age:    ResolvedOutcome(0),
		intent: ResolvedOutcome(0),
		brand:  ResolvedOutcome(0),
		num:    ResolvedOutcome(0),
		tld:    ResolvedOutcome(0),
		action: ResolvedOutcome(0),
	}
}

// stubExtractor returns a fixed vector
type stubExtractor struct {
	vector FeatureVector
}

func (s *stubExtractor) Extract(ctx context.Context, rawURL string) FeatureVector {
	return s.vector
}

func newTestService(classifier Classifier, prober SignalProber) *URLRiskService {
	return NewURLRiskService(classifier, prober, &stubExtractor{}, zap.NewNop())
}

func TestClassifyURLInvalid(t *testing.T) {
	classifier := &stubClassifier{}
	service := newTestService(classifier, neutralProber())

	tests := []string{
		"",
		"not a url",
		"ftp://example.com",
		"http://123.456.account",
		"http://nodots",
	}

	for _, url := range tests {
		verdict, err := service.ClassifyURL(context.Background(), url)
		require.NoError(t, err, "url: %q", url)
		assert.Equal(t, LabelInvalid, verdict.Label, "url: %q", url)
		assert.Equal(t, 1.0, verdict.Score, "url: %q", url)
		assert.Equal(t, []string{ReasonInvalid}, verdict.Reasons, "url: %q", url)
	}

	// Invalid URLs never reach the classifier
	assert.Zero(t, classifier.calls)
}

func TestClassifyURLLegitimate(t *testing.T) {
	service := newTestService(&stubClassifier{label: 0}, neutralProber())

	verdict, err := service.ClassifyURL(context.Background(), "https://www.microsoft.com/")
	require.NoError(t, err)

	assert.Equal(t, LabelLegitimate, verdict.Label)
	assert.Equal(t, 0.10, verdict.Score)
	assert.Equal(t, []string{ReasonNoIndicators}, verdict.Reasons)
}

func TestClassifyURLNumericDomain(t *testing.T) {
	prober := neutralProber()
	prober.num = ResolvedOutcome(1)
	service := newTestService(&stubClassifier{label: 0}, prober)

	verdict, err := service.ClassifyURL(context.Background(), "http://1234567.tk/")
	require.NoError(t, err)

	assert.Equal(t, LabelPhishing, verdict.Label)
	assert.Equal(t, 0.90, verdict.Score)
	assert.Contains(t, verdict.Reasons, ReasonNumericDomain)
}

func TestClassifyURLBrandNeedsYoungDomain(t *testing.T) {
	prober := neutralProber()
	prober.brand = ResolvedOutcome(1)
	service := newTestService(&stubClassifier{label: 0}, prober)

	verdict, err := service.ClassifyURL(context.Background(), "http://google-login.net/")
	require.NoError(t, err)
	assert.Equal(t, LabelLegitimate, verdict.Label)

	prober.age = ResolvedOutcome(1)
	verdict, err = service.ClassifyURL(context.Background(), "http://google-login.net/")
	require.NoError(t, err)
	assert.Equal(t, LabelPhishing, verdict.Label)
	assert.Equal(t, 0.85, verdict.Score)
}

func TestClassifyURLUnavailableProbesAreNeutral(t *testing.T) {
	// Every probe failed; the verdict must still be produced
	prober := &stubProber{}
	service := newTestService(&stubClassifier{label: 0}, prober)

	verdict, err := service.ClassifyURL(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, LabelLegitimate, verdict.Label)
	assert.Equal(t, []string{ReasonNoIndicators}, verdict.Reasons)
}

func TestClassifyURLMLFlag(t *testing.T) {
	service := newTestService(&stubClassifier{label: 1}, neutralProber())

	verdict, err := service.ClassifyURL(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, LabelPhishing, verdict.Label)
	assert.Equal(t, 0.70, verdict.Score)
	assert.Equal(t, []string{ReasonMLFlag}, verdict.Reasons)
}

func TestClassifyURLClassifierErrorPropagates(t *testing.T) {
	service := newTestService(&stubClassifier{err: errors.New("model handle gone")}, neutralProber())

	verdict, err := service.ClassifyURL(context.Background(), "https://example.com/")
	assert.Error(t, err)
	assert.Nil(t, verdict)
}

func TestClassifyURLIdempotent(t *testing.T) {
	prober := neutralProber()
	prober.tld = ResolvedOutcome(1)
	service := newTestService(&stubClassifier{label: 1}, prober)

	first, err := service.ClassifyURL(context.Background(), "http://phishy.bank/")
	require.NoError(t, err)
	second, err := service.ClassifyURL(context.Background(), "http://phishy.bank/")
	require.NoError(t, err)

	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Reasons, second.Reasons)
}

func TestClassifyURLDiagnostics(t *testing.T) {
	prober := neutralProber()
	prober.action = ResolvedOutcome(1)
	prober.tld = ResolvedOutcome(1)
	service := newTestService(&stubClassifier{label: 0}, prober)

	verdict, err := service.ClassifyURL(context.Background(), "http://secure-pay.login/")
	require.NoError(t, err)

	assert.Equal(t, 1, verdict.Diagnostics["suspicious_tld"])
	assert.Equal(t, 1, verdict.Diagnostics["action_domain"])
	assert.Equal(t, 0, verdict.Diagnostics["ml_flag"])
	assert.Equal(t, "suspicious_tld", verdict.Diagnostics["matched_rule"])
	assert.Equal(t, 0.90, verdict.Diagnostics["final_risk_score"])

	// Action keyword is informational: not a reason
	assert.NotContains(t, verdict.Reasons, "action")
}
