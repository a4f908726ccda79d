// Package sanitizer normalizes the raw fields of a guestbook submission.
// Nothing here rejects input: malformed values are reduced to a canonical
// form and the admission rules decide what to do with them.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"guestbook/internal/urlutil"
)

// AnonymousName is how an entry without a name is displayed.
const AnonymousName = "anonymous"

// strictPolicy allows no elements at all; text content survives escaped.
var strictPolicy = bluemonday.StrictPolicy()

// quoteUnescaper undoes the quote escaping bluemonday adds to text. Only
// &, < and > stay escaped, so quotes count as one character.
var quoteUnescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Normalized holds the sanitized submission fields. Nil pointers mean the
// field was not supplied.
type Normalized struct {
	Name    *string
	Website *string
	Comment string
}

// Normalize applies Comment, Website and Name to the raw form values.
func Normalize(name, website, comment string) Normalized {
	return Normalized{
		Name:    Name(name),
		Website: Website(website),
		Comment: Comment(comment),
	}
}

// Comment removes every HTML element from the comment and escapes what is
// left so that no markup can be interpreted when the comment is rendered.
//
// Examples:
//   - "<b>hi</b> there" -> "hi there"
//   - "a < b" -> "a &lt; b"
//   - `it's "fine"` -> `it's "fine"`
func Comment(raw string) string {
	return quoteUnescaper.Replace(strictPolicy.Sanitize(raw))
}

// Website returns nil for a blank value, otherwise the value without its
// http(s) scheme and without a single trailing slash.
//
//   - "http://example.com/" -> "example.com"
//   - "https://example.com/blog/" -> "example.com/blog"
func Website(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	site := urlutil.TrimTrailingSlash(urlutil.StripScheme(trimmed))
	return &site
}

// Name returns nil when the name is blank or spells "anonymous" in any case.
// Other values are kept verbatim so that the name pattern can still reject
// leading or trailing separators.
func Name(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, AnonymousName) {
		return nil
	}
	name := raw
	return &name
}

// DisplayName renders a stored name, substituting AnonymousName for nil.
func DisplayName(name *string) string {
	if name == nil {
		return AnonymousName
	}
	return *name
}
