// Package category maps free-form spend category labels onto a small
// canonical set.
package category

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical category labels.
const (
	Tech      = "Tech"
	Marketing = "Marketing"
	Green     = "Green"
	Others    = "Others"
)

// synonyms are exact matches on the cleaned label.
var synonyms = map[string]string{
	"tech":           Tech,
	"technology":     Tech,
	"it":             Tech,
	"software":       Tech,
	"saas":           Tech,
	"cloud":          Tech,
	"marketing":      Marketing,
	"mkt":            Marketing,
	"green":          Green,
	"sustainability": Green,
	"other":          Others,
	"others":         Others,
}

var titleCaser = cases.Title(language.English)

// clean lowercases and reduces every non-letter run to a single space.
func clean(s string) string {
	var b strings.Builder
	inGap := false
	for _, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			inGap = true
			continue
		}
		if inGap && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inGap = false
		b.WriteRune(r)
	}
	return b.String()
}

// Canonicalize maps a raw category label to its canonical form. Exact
// synonyms win, then ordered substring heuristics; anything left over is
// kept title-cased as an ad-hoc category so new labels survive. Empty
// input falls back to Others.
func Canonicalize(raw string) string {
	s := clean(raw)
	if s == "" {
		return Others
	}
	if c, ok := synonyms[s]; ok {
		return c
	}
	switch {
	case strings.HasPrefix(s, "tech") || strings.Contains(s, "technolog"):
		return Tech
	case strings.Contains(s, "market"):
		return Marketing
	case strings.Contains(s, "green") || strings.Contains(s, "sustain"):
		return Green
	case strings.Contains(s, "other"):
		return Others
	}
	return titleCaser.String(s)
}
