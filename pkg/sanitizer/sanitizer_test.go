package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"guestbook/pkg/sanitizer"
)

func TestComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "Hello there", expected: "Hello there"},
		{name: "inline tags", input: "<b>hi</b> there", expected: "hi there"},
		{name: "script dropped", input: "<script>alert(1)</script>hello", expected: "hello"},
		{name: "link stripped", input: `<a href="http://evil">click</a>`, expected: "click"},
		{name: "bare angle bracket escaped", input: "a < b", expected: "a &lt; b"},
		{name: "quotes kept plain", input: `it's "fine" & <b>ok</b>`, expected: `it's "fine" &amp; ok`},
		{name: "empty", input: "", expected: ""},
		{name: "only markup", input: "<p></p>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Comment(tt.input)
			require.Equal(t, tt.expected, got)
			require.NotContains(t, got, "<")
		})
	}
}

func TestWebsite(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{name: "blank", input: "   ", expected: nil},
		{name: "empty", input: "", expected: nil},
		{name: "http with slash", input: "http://example.com/", expected: ptr("example.com")},
		{name: "https with path", input: "https://example.com/blog/", expected: ptr("example.com/blog")},
		{name: "no scheme", input: "example.com", expected: ptr("example.com")},
		{name: "upper case scheme", input: "HTTP://example.com", expected: ptr("example.com")},
		{name: "only one slash trimmed", input: "example.com//", expected: ptr("example.com/")},
		{name: "surrounding whitespace", input: "  example.com/  ", expected: ptr("example.com")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sanitizer.Website(tt.input))
		})
	}
}

func TestName(t *testing.T) {
	require.Nil(t, sanitizer.Name(""))
	require.Nil(t, sanitizer.Name("  \t"))
	require.Nil(t, sanitizer.Name("anonymous"))
	require.Nil(t, sanitizer.Name("AnOnYmOuS"))
	require.Nil(t, sanitizer.Name(" Anonymous "))
	require.Equal(t, ptr("Alice"), sanitizer.Name("Alice"))
	// kept verbatim so the name pattern can reject the leading space
	require.Equal(t, ptr(" Bob"), sanitizer.Name(" Bob"))
}

func TestNormalize(t *testing.T) {
	n := sanitizer.Normalize("", "http://example.com/", "<i>nice</i> site")
	require.Nil(t, n.Name)
	require.Equal(t, ptr("example.com"), n.Website)
	require.Equal(t, "nice site", n.Comment)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "anonymous", sanitizer.DisplayName(nil))
	require.Equal(t, "Eve", sanitizer.DisplayName(ptr("Eve")))
	require.True(t, strings.EqualFold(sanitizer.AnonymousName, "ANONYMOUS"))
}

func ptr(s string) *string {
	return &s
}
