package core

// Reason sentences shown to the end user. The wording is fixed; the web
// front end and API consumers both surface these verbatim.
const (
	ReasonInvalid       = "Malformed or invalid URL structure"
	ReasonSuspiciousTLD = "Uses a suspicious top-level domain"
	ReasonNumericDomain = "Domain name contains only numbers"
	ReasonBrandRisk     = "Possible brand impersonation detected"
	ReasonYoungDomain   = "Domain is newly registered"
	ReasonHTMLIntent    = "Login or password form detected on website"
	ReasonMLFlag        = "Machine learning model detected phishing patterns"
	ReasonNoIndicators  = "No common phishing indicators detected"
)

// InvalidScore is the score assigned to URLs that fail validation
const InvalidScore = 1.0

// LegitimateScore is the score assigned when no precedence rule matches
const LegitimateScore = 0.10

// Rule is one entry in the ordered precedence table. The table is evaluated
// top-down and the first matching rule decides the verdict, so precedence
// is auditable rule by rule.
type Rule struct {
	Name  string
	Match func(SignalSet) bool
	Score float64
}

// PrecedenceRules is the decision table, highest precedence first. Brand
// impersonation alone is deliberately insufficient; it must co-occur with
// a newly registered domain.
var PrecedenceRules = []Rule{
	{
		Name:  "suspicious_tld",
		Match: func(s SignalSet) bool { return s.SuspiciousTLD == 1 },
		Score: 0.90,
	},
	{
		Name:  "numeric_domain",
		Match: func(s SignalSet) bool { return s.NumericDomain == 1 },
		Score: 0.90,
	},
	{
		Name:  "brand_young_domain",
		Match: func(s SignalSet) bool { return s.BrandRisk == 1 && s.YoungDomain == 1 },
		Score: 0.85,
	},
	{
		Name:  "html_intent",
		Match: func(s SignalSet) bool { return s.HTMLIntent == 1 },
		Score: 0.80,
	},
	{
		Name:  "ml_flag",
		Match: func(s SignalSet) bool { return s.MLFlag == 1 },
		Score: 0.70,
	},
}

// Decide evaluates the precedence table and returns the verdict label, the
// risk score and the name of the matched rule ("" when none matched).
func Decide(signals SignalSet) (Label, float64, string) {
	for _, rule := range PrecedenceRules {
		if rule.Match(signals) {
			return LabelPhishing, rule.Score, rule.Name
		}
	}
	return LabelLegitimate, LegitimateScore, ""
}

// GenerateReasons builds the explanation list in canonical order. It reports
// every signal that fired, not just the one that decided the verdict: the
// list is a transparency report, not a justification trace. ActionDomain is
// excluded on purpose.
func GenerateReasons(invalid bool, signals SignalSet) []string {
	var reasons []string

	if invalid {
		reasons = append(reasons, ReasonInvalid)
	}
	if signals.SuspiciousTLD == 1 {
		reasons = append(reasons, ReasonSuspiciousTLD)
	}
	if signals.NumericDomain == 1 {
		reasons = append(reasons, ReasonNumericDomain)
	}
	if signals.BrandRisk == 1 {
		reasons = append(reasons, ReasonBrandRisk)
	}
	if signals.YoungDomain == 1 {
		reasons = append(reasons, ReasonYoungDomain)
	}
	if signals.HTMLIntent == 1 {
		reasons = append(reasons, ReasonHTMLIntent)
	}
	if signals.MLFlag == 1 {
		reasons = append(reasons, ReasonMLFlag)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonNoIndicators)
	}

	return reasons
}
