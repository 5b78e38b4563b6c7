package probes

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

var credentialKeywords = []string{"login", "verify", "signin", "password"}

// HTMLIntent fetches the page once and flags it only when it carries both a
// password input and credential wording in the body. Any fetch or parse
// failure is unavailable.
func (e *Engine) HTMLIntent(ctx context.Context, rawURL string) core.Outcome {
	fetchCtx, cancel := e.probeContext(ctx)
	defer cancel()

	body, err := e.fetcher.Fetch(fetchCtx, rawURL)
	if err != nil {
		e.logger.Debug("HTML intent probe fetch failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return core.UnavailableOutcome()
	}

	lower := strings.ToLower(body)

	hasPassword := strings.Contains(lower, `type="password"`)
	if !hasPassword {
		// Marker scan misses single-quoted and unquoted attributes; a
		// structural pass over the document catches those.
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(body)); err == nil {
			hasPassword = doc.Find(`input[type=password]`).Length() > 0
		}
	}

	hasKeyword := false
	for _, word := range credentialKeywords {
		if strings.Contains(lower, word) {
			hasKeyword = true
			break
		}
	}

	if hasPassword && hasKeyword {
		return core.ResolvedOutcome(1)
	}
	return core.ResolvedOutcome(0)
}
