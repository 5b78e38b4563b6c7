package probes

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/urlinfo"
)

// youngAgeDays is the age below which a registration counts as suspiciously
// new. Distinct from the 365-day established-domain feature threshold.
const youngAgeDays = 30

// DomainAge flags registrable domains younger than 30 days. A missing or
// dateless registration record is unavailable, not young.
func (e *Engine) DomainAge(ctx context.Context, rawURL string) core.Outcome {
	domain := urlinfo.RegistrableDomain(rawURL)
	if domain == "" {
		return core.UnavailableOutcome()
	}

	lookupCtx, cancel := e.probeContext(ctx)
	defer cancel()

	record, err := e.whois.Lookup(lookupCtx, domain)
	if err != nil {
		e.logger.Debug("Domain age probe failed",
			zap.String("domain", domain),
			zap.Error(err))
		return core.UnavailableOutcome()
	}
	if record == nil || !record.Resolved {
		return core.UnavailableOutcome()
	}

	if record.AgeDays(time.Now()) < youngAgeDays {
		return core.ResolvedOutcome(1)
	}
	return core.ResolvedOutcome(0)
}
