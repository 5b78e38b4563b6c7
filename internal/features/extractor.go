// Package features derives the fixed-order lexical feature vector the
// pretrained classifier expects. All fields except the last are pure
// string/regex derivations; the established-domain flag consults the
// registration lookup best-effort and stays neutral when it cannot.
package features

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/urlinfo"
)

// establishedAgeDays is the age at which a domain counts as established.
// Distinct from the 30-day young-domain probe threshold; the two feed
// different signals and must not be merged.
const establishedAgeDays = 365

var shorteners = []string{"bit.ly", "goo.gl", "tinyurl", "t.co", "ow.ly"}

var ipLiteral = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)

// Extractor builds feature vectors in the exact order the model was
// trained on
type Extractor struct {
	whois  core.WhoisClient
	logger *zap.Logger
}

// NewExtractor creates a new lexical feature extractor
func NewExtractor(whois core.WhoisClient, logger *zap.Logger) *Extractor {
	return &Extractor{
		whois:  whois,
		logger: logger,
	}
}

// Extract derives the feature vector for a URL. It is total: any field
// that cannot be computed is left at 0, and it never fails.
func (e *Extractor) Extract(ctx context.Context, rawURL string) core.FeatureVector {
	var v core.FeatureVector

	v[core.FeatureHasIPLiteral] = boolFeature(ipLiteral.MatchString(rawURL))
	v[core.FeatureURLLength] = float64(len(rawURL))
	v[core.FeatureUsesShortener] = boolFeature(usesShortener(rawURL))
	v[core.FeatureHasAtSymbol] = boolFeature(strings.Contains(rawURL, "@"))
	v[core.FeatureDoubleSlashRedirect] = boolFeature(strings.Count(rawURL, "//") > 1)
	v[core.FeatureHyphenatedDomain] = boolFeature(strings.Contains(urlinfo.DomainLabel(rawURL), "-"))
	v[core.FeatureDeepSubdomain] = boolFeature(strings.Count(rawURL, ".") > 2)
	v[core.FeatureHTTPSToken] = boolFeature(strings.HasPrefix(rawURL, "https"))
	v[core.FeatureEstablishedDomain] = boolFeature(e.establishedDomain(ctx, rawURL))

	return v
}

func usesShortener(rawURL string) bool {
	for _, s := range shorteners {
		if strings.Contains(rawURL, s) {
			return true
		}
	}
	return false
}

// establishedDomain reports whether the registrable domain has existed for
// at least a year. Unknown is neutral: a failed or dateless lookup is false.
func (e *Extractor) establishedDomain(ctx context.Context, rawURL string) bool {
	domain := urlinfo.RegistrableDomain(rawURL)
	if domain == "" {
		return false
	}

	record, err := e.whois.Lookup(ctx, domain)
	if err != nil {
		e.logger.Debug("Registration lookup failed for established-domain feature",
			zap.String("domain", domain),
			zap.Error(err))
		return false
	}
	if record == nil || !record.Resolved {
		return false
	}

	return record.AgeDays(time.Now()) >= establishedAgeDays
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
