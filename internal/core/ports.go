package core

import (
	"context"
)

// Classifier wraps the pretrained statistical model. Predict is a pure query
// against the loaded artifact and must be safe for unsynchronized concurrent
// use. Unlike the probes, a predict failure is a configuration defect and is
// returned as an error rather than folded into a neutral default.
type Classifier interface {
	// Predict returns 1 (phishing) or 0 (legitimate) for a feature vector
	Predict(vector FeatureVector) (int, error)
}

// WhoisClient resolves a registrable domain to its registration record
type WhoisClient interface {
	// Lookup returns the registration record for a domain. A record with
	// Resolved=false means the registry answered but carried no usable
	// creation date; a non-nil error means the lookup itself failed.
	Lookup(ctx context.Context, domain string) (*WhoisRecord, error)
}

// PageFetcher retrieves the body of a URL within a bounded timeout
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// WhoisCache caches registration records keyed by registrable domain
type WhoisCache interface {
	// Get retrieves a cached record for a domain
	Get(ctx context.Context, domain string) (*WhoisRecord, error)

	// Set stores a record
	Set(ctx context.Context, record *WhoisRecord) error

	// Delete removes a record
	Delete(ctx context.Context, domain string) error

	// Cleanup removes expired records
	Cleanup(ctx context.Context) error
}

// FeatureExtractor derives the lexical feature vector from a URL string.
// Extraction is total: it never fails, and any field that cannot be
// computed is left at its neutral zero value.
type FeatureExtractor interface {
	Extract(ctx context.Context, rawURL string) FeatureVector
}

// SignalProber runs the external-signal heuristics. Every method absorbs
// its own failures and reports them as an unavailable Outcome.
type SignalProber interface {
	// DomainAge flags domains registered less than 30 days ago
	DomainAge(ctx context.Context, rawURL string) Outcome

	// HTMLIntent flags pages carrying a password input plus credential wording
	HTMLIntent(ctx context.Context, rawURL string) Outcome

	// BrandImpersonation flags known brand names outside their legitimate domains
	BrandImpersonation(rawURL string) Outcome

	// NumericDomain flags registrable domain labels made only of digits
	NumericDomain(rawURL string) Outcome

	// SuspiciousTLD flags hosts whose top-level label is a known lure word
	SuspiciousTLD(rawURL string) Outcome

	// ActionKeyword flags action words in the domain label (diagnostics only)
	ActionKeyword(rawURL string) Outcome
}
