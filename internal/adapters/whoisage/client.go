// Package whoisage resolves registrable domains to registration records
// through the public WHOIS system.
package whoisage

import (
	"context"
	"fmt"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
)

// Registries disagree on date formats; these cover the common ones
var creationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// Client looks up registration records over WHOIS
type Client struct {
	whois  *whois.Client
	logger *zap.Logger
}

// NewClient creates a WHOIS client with a per-lookup timeout
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		whois:  whois.NewClient().SetTimeout(timeout),
		logger: logger,
	}
}

// Lookup resolves a registrable domain to its registration record. A record
// with Resolved=false means the registry answered without a usable creation
// date. Subdomain-style answers are retried against the parent domain.
func (c *Client) Lookup(ctx context.Context, domain string) (*core.WhoisRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := c.whois.Whois(domain)
	if err != nil {
		return nil, fmt.Errorf("whois query for %s failed: %w", domain, err)
	}

	parsed, err := parser.Parse(raw)
	if err != nil || parsed.Domain == nil {
		// Registries sometimes refuse subdomain queries; the parent
		// registration is the one that matters anyway.
		if parts := strings.Split(domain, "."); len(parts) > 2 {
			return c.Lookup(ctx, strings.Join(parts[1:], "."))
		}
		if err != nil {
			return nil, fmt.Errorf("whois response for %s unparseable: %w", domain, err)
		}
		return &core.WhoisRecord{Domain: domain, FetchedAt: time.Now()}, nil
	}

	record := &core.WhoisRecord{
		Domain:    domain,
		FetchedAt: time.Now(),
	}

	created := parseCreationDate(parsed.Domain.CreatedDate)
	if !created.IsZero() {
		record.CreatedAt = created
		record.Resolved = true
	} else {
		c.logger.Debug("WHOIS record carries no usable creation date",
			zap.String("domain", domain),
			zap.String("created_date", parsed.Domain.CreatedDate))
	}

	return record, nil
}

func parseCreationDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
