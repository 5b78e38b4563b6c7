package core

import (
	"time"
)

// Label is the final classification of a URL
type Label string

const (
	LabelPhishing   Label = "phishing"
	LabelLegitimate Label = "legitimate"
	LabelInvalid    Label = "invalid"
)

// FeatureCount is the number of lexical features the classifier was trained on
const FeatureCount = 9

// FeatureVector is the ordered lexical feature vector fed to the classifier.
// The field order is fixed by the training pipeline and must never change.
type FeatureVector [FeatureCount]float64

// Indexes into FeatureVector, in training order
const (
	FeatureHasIPLiteral = iota
	FeatureURLLength
	FeatureUsesShortener
	FeatureHasAtSymbol
	FeatureDoubleSlashRedirect
	FeatureHyphenatedDomain
	FeatureDeepSubdomain
	FeatureHTTPSToken
	FeatureEstablishedDomain
)

// Outcome is the tagged result of a single probe. A probe that could not
// produce an answer (timeout, lookup miss, parse failure) is Unavailable
// rather than risky; OrDefault is the single place that policy is applied.
type Outcome struct {
	Value    int
	Resolved bool
}

// ResolvedOutcome wraps a successfully computed probe value
func ResolvedOutcome(value int) Outcome {
	return Outcome{Value: value, Resolved: true}
}

// UnavailableOutcome marks a probe that failed to produce an answer
func UnavailableOutcome() Outcome {
	return Outcome{}
}

// OrDefault collapses an unavailable outcome to the neutral value 0
func (o Outcome) OrDefault() int {
	if !o.Resolved {
		return 0
	}
	return o.Value
}

// SignalSet holds the collected risk signals for one URL. Every signal is
// 0 or 1; unknown outcomes are folded to 0 before the fuser runs.
type SignalSet struct {
	SuspiciousTLD int
	NumericDomain int
	BrandRisk     int
	YoungDomain   int
	HTMLIntent    int
	MLFlag        int

	// ActionDomain is informational only and never influences the verdict
	ActionDomain int
}

// Verdict is the result of classifying a single URL
type Verdict struct {
	URL         string
	Label       Label
	Score       float64
	Reasons     []string
	Diagnostics map[string]any
	AnalyzedAt  time.Time
}

// WhoisRecord is a cached registration lookup for a registrable domain.
// Resolved is false when the registry returned no usable creation date;
// negative results are cacheable too.
type WhoisRecord struct {
	Domain    string
	CreatedAt time.Time
	Resolved  bool
	FetchedAt time.Time
	ExpiresAt time.Time
}

// AgeDays returns the domain age in whole days at the given instant
func (r *WhoisRecord) AgeDays(now time.Time) int {
	if r == nil || !r.Resolved {
		return 0
	}
	return int(now.Sub(r.CreatedAt).Hours() / 24)
}
