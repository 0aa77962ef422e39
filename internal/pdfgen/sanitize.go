package pdfgen

import "strings"

// foldTable maps characters the built-in Helvetica family cannot carry to
// their visually-nearest ASCII equivalent, case preserved.
var foldTable = map[rune]rune{
	// Turkish alphabet
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',
	// typographic punctuation
	'–': '-', '—': '-',
	'’': '\'', '‘': '\'',
	'“': '"', '”': '"',
}

// Fold substitutes the runes above with their ASCII base; everything else
// passes through. Total and idempotent.
func Fold(s string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := foldTable[r]; ok {
			return sub
		}
		return r
	}, s)
}
