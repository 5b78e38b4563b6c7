// Package urlinfo parses candidate URLs and extracts the host fragments the
// feature extractor and probes work on. Everything here is a pure string
// operation; parse failures yield zero values, never panics.
package urlinfo

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	ipv4Host  = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	hostChars = regexp.MustCompile(`^[a-z0-9.-]+$`)
)

// Validate is the hard gate in front of the whole engine. Only http/https
// URLs with a non-empty authority pass, and the authority must be either a
// dotted-quad IPv4 literal or a dotted name over [a-z0-9.-] (checked after
// lowercasing). Anything that fails to parse is invalid.
func Validate(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}

	host := strings.ToLower(parsed.Host)

	if ipv4Host.MatchString(host) {
		return true
	}
	if strings.Contains(host, ".") && hostChars.MatchString(host) {
		return !looksLikeBrokenIP(host)
	}

	return false
}

// looksLikeBrokenIP reports whether the host carries IPv4-style digit
// groups without being a valid IPv4 literal, e.g. "123.456.account".
// Such hosts mimic addresses and are rejected outright.
func looksLikeBrokenIP(host string) bool {
	for _, label := range strings.Split(host, ".") {
		if len(label) == 0 || len(label) > 3 {
			continue
		}
		allDigits := true
		for _, r := range label {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return true
		}
	}
	return false
}

// Host extracts the authority part of a URL with a tolerant string split,
// so it also works on strings url.Parse would reject. Always lowercase.
func Host(raw string) string {
	rest := raw
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[idx+2:]
	}
	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.ToLower(rest)
}

// RegistrableDomain returns the eTLD+1 of the URL's host (for example
// "example.co.uk" from "www.example.co.uk"), or "" when none can be
// derived. Internationalized hosts are folded to ASCII first.
func RegistrableDomain(raw string) string {
	host := hostname(raw)
	if host == "" {
		return ""
	}

	if ascii, err := idna.Lookup.ToASCII(host); err == nil && ascii != "" {
		host = ascii
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return strings.ToLower(etld1)
}

// DomainLabel returns the registrable domain minus its public suffix, the
// single label a registrant actually chose ("example" from
// "www.example.co.uk"). Empty when no registrable domain exists.
func DomainLabel(raw string) string {
	etld1 := RegistrableDomain(raw)
	if etld1 == "" {
		return ""
	}

	suffix, _ := publicsuffix.PublicSuffix(etld1)
	if suffix == "" || suffix == etld1 {
		return etld1
	}
	return strings.TrimSuffix(etld1, "."+suffix)
}

// TopLabel returns the rightmost dot-segment of the host, i.e. whatever the
// URL presents as its top-level domain. Deliberately string-based: hosts
// with invented TLDs must still report them.
func TopLabel(raw string) string {
	host := Host(raw)
	if !strings.Contains(host, ".") {
		return ""
	}
	parts := strings.Split(host, ".")
	return parts[len(parts)-1]
}

// hostname is like Host but prefers the parsed form (which strips ports and
// userinfo), falling back to the string split when parsing fails.
func hostname(raw string) string {
	if parsed, err := url.Parse(raw); err == nil && parsed.Hostname() != "" {
		return strings.ToLower(parsed.Hostname())
	}
	host := Host(raw)
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host
}
