package filter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

type stubClassifier struct {
	label int
}

func (s *stubClassifier) Predict(vector core.FeatureVector) (int, error) {
	return s.label, nil
}

type stubProber struct{}

func (s *stubProber) DomainAge(ctx context.Context, rawURL string) core.Outcome {
	return core.ResolvedOutcome(0)
}
func (s *stubProber) HTMLIntent(ctx context.Context, rawURL string) core.Outcome {
	return core.ResolvedOutcome(0)
}
func (s *stubProber) BrandImpersonation(rawURL string) core.Outcome { return core.ResolvedOutcome(0) }
func (s *stubProber) NumericDomain(rawURL string) core.Outcome      { return core.ResolvedOutcome(0) }
func (s *stubProber) SuspiciousTLD(rawURL string) core.Outcome      { return core.ResolvedOutcome(0) }
func (s *stubProber) ActionKeyword(rawURL string) core.Outcome      { return core.ResolvedOutcome(0) }

type stubExtractor struct{}

func (s *stubExtractor) Extract(ctx context.Context, rawURL string) core.FeatureVector {
	return core.FeatureVector{}
}

func newTestFilter() *HTTPFilter {
	service := core.NewURLRiskService(&stubClassifier{}, &stubProber{}, &stubExtractor{}, zap.NewNop())
	return NewHTTPFilter(service, zap.NewNop(), ":0")
}

func postClassify(t *testing.T, f *HTTPFilter, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	f.handleClassify(rec, req)
	return rec
}

func TestHandleClassifyLegitimate(t *testing.T) {
	rec := postClassify(t, newTestFilter(), `{"url":"https://www.example.com/"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp verdictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "legitimate", resp.Label)
	assert.Equal(t, 0.10, resp.Score)
	assert.Equal(t, []string{core.ReasonNoIndicators}, resp.Reasons)
}

func TestHandleClassifyInvalidURL(t *testing.T) {
	rec := postClassify(t, newTestFilter(), `{"url":"not a url"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp verdictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid", resp.Label)
	assert.Equal(t, 1.0, resp.Score)
}

func TestHandleClassifyBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{"url":`},
		{"missing url", `{}`},
		{"empty url", `{"url":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postClassify(t, newTestFilter(), tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	f := newTestFilter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	f.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
