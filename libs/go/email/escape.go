package email

import "strings"

// TrustedHTML marks rich content that was authored or sanitized upstream
// (amendment summaries, legal notices, disposition summaries) and is
// interpolated into templates verbatim. Never wrap investor-supplied plain
// text in this type; plain string fields are always escaped.
type TrustedHTML string

// htmlEscaper replaces the five HTML-significant characters in a single
// pass, so entities introduced by one substitution are never re-encoded
// by another.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeString converts arbitrary text into HTML-safe text. Every
// plain-text field must pass through here exactly once before it is
// interpolated into a fragment.
func escapeString(s string) string {
	return htmlEscaper.Replace(s)
}
