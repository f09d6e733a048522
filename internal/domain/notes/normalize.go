package notes

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Normalize returns the lowercase, unaccented form of s used for cue
// matching. Only the acute vowels are folded; every other rune is kept.
func Normalize(s string) string {
	t := transform.Chain(cases.Lower(language.Und), runes.Map(unaccent))
	out, _, _ := transform.String(t, s)
	return out
}

func unaccent(r rune) rune {
	switch r {
	case 'á':
		return 'a'
	case 'é':
		return 'e'
	case 'í':
		return 'i'
	case 'ó':
		return 'o'
	case 'ú':
		return 'u'
	}
	return r
}
