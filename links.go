package klingon

import (
	"regexp"
	"strings"
)

// linkRe matches an entry reference such as "{Qong:v}" inside definitions,
// notes and examples.
var linkRe = regexp.MustCompile(`\{[A-Za-z0-9 '":;,.\-?!/()@=%&]+\}`)

// LinkedEntries returns the query-mode descriptors of every "{...}"
// reference in text, in order of appearance.
func LinkedEntries(text string) []EntryDescriptor {
	var out []EntryDescriptor
	for _, m := range linkRe.FindAllString(text, -1) {
		e, _ := ParseQuery(m[1 : len(m)-1])
		out = append(out, e)
	}
	return out
}

// PlainDefinition replaces each "{name:pos}" reference in text with the
// bare name.
func PlainDefinition(text string) string {
	return linkRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[1 : len(m)-1]
		if idx := strings.Index(inner, ":"); idx >= 0 {
			return inner[:idx]
		}
		return inner
	})
}
