package urlutil

import (
	"regexp"
	"strings"
)

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// StripScheme removes a leading http:// or https:// prefix, in any case.
func StripScheme(raw string) string {
	return schemePrefix.ReplaceAllString(raw, "")
}

// TrimTrailingSlash removes exactly one trailing slash.
func TrimTrailingSlash(raw string) string {
	return strings.TrimSuffix(raw, "/")
}

// HasScheme reports whether raw starts with an http(s) scheme.
func HasScheme(raw string) bool {
	return schemePrefix.MatchString(raw)
}
