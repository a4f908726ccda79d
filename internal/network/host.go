package network

import "regexp"

// hostPattern skips an optional scheme and userinfo and captures everything
// up to the first port separator or path.
var hostPattern = regexp.MustCompile(`(?im)^(?:https?://)?(?:[^@\n]+@)?([^:/\n]+)`)

// ExtractHost returns the host part of a website value, or "" when none can
// be found.
//
//   - "https://user@example.com:8080/a" -> "example.com"
//   - "example.com/blog" -> "example.com"
func ExtractHost(website string) string {
	m := hostPattern.FindStringSubmatch(website)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
