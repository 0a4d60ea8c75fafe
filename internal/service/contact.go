package service

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

// NormalizePhone formats a contact number in E.164 when it parses for the
// given region. Unparseable input is returned trimmed; a bad phone number is
// not grounds for rejecting a whole submission.
func NormalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, strings.ToUpper(strings.TrimSpace(region)))
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// NormalizeWebsite lowercases the host and verifies it is a resolvable IDNA
// name. Input that does not look like a URL is returned trimmed.
func NormalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	if _, err := idna.Lookup.ToASCII(parsed.Hostname()); err != nil {
		return raw
	}

	parsed.Host = strings.ToLower(parsed.Host)
	return parsed.String()
}
