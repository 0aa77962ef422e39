package pdfgen

import (
	"regexp"
	"strings"
)

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// StripMarkup flattens inline-markup text (template notes, payment
// instructions) to plain text: every well-formed <...> tag becomes a space,
// then whitespace runs collapse to a single space. A bare '<' with no
// closing '>' stays literal.
func StripMarkup(s string) string {
	return collapseSpace(tagRe.ReplaceAllString(s, " "))
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
