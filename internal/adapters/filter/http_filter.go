package filter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// HTTPFilter serves classification over a JSON HTTP API
type HTTPFilter struct {
	service    *core.URLRiskService
	logger     *zap.Logger
	listenAddr string
	server     *http.Server
}

// classifyRequest is the inbound payload for POST /v1/classify
type classifyRequest struct {
	URL string `json:"url"`
}

// verdictResponse is the wire form of a verdict
type verdictResponse struct {
	URL         string         `json:"url"`
	Label       string         `json:"label"`
	Score       float64        `json:"score"`
	Reasons     []string       `json:"reasons"`
	Diagnostics map[string]any `json:"diagnostics"`
	AnalyzedAt  time.Time      `json:"analyzed_at"`
}

// NewHTTPFilter creates a new HTTP API filter
func NewHTTPFilter(service *core.URLRiskService, logger *zap.Logger, listenAddr string) *HTTPFilter {
	return &HTTPFilter{
		service:    service,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

// Start starts the HTTP server
func (f *HTTPFilter) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", f.handleHealth)
	r.Post("/v1/classify", f.handleClassify)

	f.server = &http.Server{
		Addr:         f.listenAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	f.logger.Info("HTTP filter starting", zap.String("address", f.listenAddr))

	go func() {
		if err := f.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			f.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the HTTP server down gracefully
func (f *HTTPFilter) Stop() error {
	if f.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return f.server.Shutdown(ctx)
}

// ClassifyURL classifies a URL directly, bypassing the HTTP layer. Mainly
// used for testing.
func (f *HTTPFilter) ClassifyURL(ctx context.Context, rawURL string) (*core.Verdict, error) {
	return f.service.ClassifyURL(ctx, rawURL)
}

func (f *HTTPFilter) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (f *HTTPFilter) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	verdict, err := f.service.ClassifyURL(r.Context(), req.URL)
	if err != nil {
		f.logger.Error("Classification failed",
			zap.String("url", req.URL),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdictResponse{
		URL:         verdict.URL,
		Label:       string(verdict.Label),
		Score:       verdict.Score,
		Reasons:     verdict.Reasons,
		Diagnostics: verdict.Diagnostics,
		AnalyzedAt:  verdict.AnalyzedAt,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
