package render

import "strings"

var escapeReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Escaper converts untrusted text into HTML-safe text, memoizing results.
// One instance lives per pipeline run; this is the only sanitization
// boundary before portfolio text is interpolated into markup.
type Escaper struct {
	cache map[string]string
}

// NewEscaper creates an Escaper with an empty cache.
func NewEscaper() *Escaper {
	return &Escaper{cache: make(map[string]string)}
}

// Escape returns the HTML-escaped form of s, serving repeats from the cache.
func (e *Escaper) Escape(s string) string {
	if s == "" {
		return ""
	}
	if escaped, ok := e.cache[s]; ok {
		return escaped
	}
	escaped := escapeReplacer.Replace(s)
	e.cache[s] = escaped
	return escaped
}
