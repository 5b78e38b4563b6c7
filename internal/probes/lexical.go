package probes

import (
	"strings"

	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/urlinfo"
)

// brandEntry maps a brand name to the registrable domains it legitimately
// operates. Order matters: the first brand found in the URL decides.
type brandEntry struct {
	name    string
	domains []string
}

var knownBrands = []brandEntry{
	{"google", []string{"google.com", "google.co.in"}},
	{"paypal", []string{"paypal.com"}},
	{"apple", []string{"apple.com"}},
	{"microsoft", []string{"microsoft.com"}},
}

// suspiciousTopLabels are lure words used as invented top-level domains
var suspiciousTopLabels = map[string]struct{}{
	"login":   {},
	"verify":  {},
	"secure":  {},
	"update":  {},
	"account": {},
	"signin":  {},
	"bank":    {},
}

var actionKeywords = []string{"login", "secure", "verify", "account", "update", "signin", "bank"}

// BrandImpersonation scans the URL for a known brand name. A brand present
// without any of its legitimate domains is impersonation; a brand on its
// own domain, or no brand at all, is clean.
func (e *Engine) BrandImpersonation(rawURL string) core.Outcome {
	lower := strings.ToLower(rawURL)

	for _, brand := range knownBrands {
		if !strings.Contains(lower, brand.name) {
			continue
		}
		for _, domain := range brand.domains {
			if strings.Contains(lower, domain) {
				return core.ResolvedOutcome(0)
			}
		}
		return core.ResolvedOutcome(1)
	}
	return core.ResolvedOutcome(0)
}

// NumericDomain flags registrable domain labels made entirely of digits
func (e *Engine) NumericDomain(rawURL string) core.Outcome {
	label := urlinfo.DomainLabel(rawURL)
	if label == "" {
		return core.ResolvedOutcome(0)
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return core.ResolvedOutcome(0)
		}
	}
	return core.ResolvedOutcome(1)
}

// SuspiciousTLD flags hosts whose top-level label exactly matches a lure
// word. Exact match only: "banking" is not "bank".
func (e *Engine) SuspiciousTLD(rawURL string) core.Outcome {
	top := urlinfo.TopLabel(rawURL)
	if top == "" {
		return core.ResolvedOutcome(0)
	}
	if _, ok := suspiciousTopLabels[top]; ok {
		return core.ResolvedOutcome(1)
	}
	return core.ResolvedOutcome(0)
}

// ActionKeyword flags action words inside the domain label. Informational
// only; the fuser never consults it.
func (e *Engine) ActionKeyword(rawURL string) core.Outcome {
	label := urlinfo.DomainLabel(rawURL)
	if label == "" {
		return core.ResolvedOutcome(0)
	}
	for _, word := range actionKeywords {
		if strings.Contains(label, word) {
			return core.ResolvedOutcome(1)
		}
	}
	return core.ResolvedOutcome(0)
}
