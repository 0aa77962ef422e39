package pdfgen

import "strings"

// Wrap packs words into lines no wider than maxWidth, greedy left to right.
// measure reports the rendered width of a string in the same units as
// maxWidth. Input is expected whitespace-collapsed (see StripMarkup). A
// single word wider than maxWidth becomes a line of its own; words are
// never split or hyphenated. Empty input yields no lines.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	if text == "" {
		return nil
	}
	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		cand := word
		if line != "" {
			cand = line + " " + word
		}
		if measure(cand) > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = cand
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
