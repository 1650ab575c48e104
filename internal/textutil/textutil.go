// Package textutil cleans the free-text and numeric-looking strings found
// in financial export files.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CleanNumber parses a numeric-looking string into a decimal, stripping
// currency symbols, thousands separators and stray text first. Anything
// unparseable resolves to zero so a bad cell never poisons an aggregate.
func CleanNumber(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeSpace collapses runs of whitespace (including non-breaking
// spaces) to a single ASCII space and trims the ends.
func NormalizeSpace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayName normalizes whitespace and title-cases a person or
// counterparty name for display.
func DisplayName(s string) string {
	return titleCaser.String(NormalizeSpace(s))
}

// counterpartyRe captures the text following the first whole word "to",
// up to the next comma, semicolon or parenthesis.
var counterpartyRe = regexp.MustCompile(`(?i)\bto\s+([^,;()]+)`)

// honorifics dropped from the front of an extracted counterparty.
var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "miss": true,
}

// ExtractCounterparty pulls a counterparty name out of a free-text
// description like "payout to Mr James Brook". A leading honorific is
// dropped. Returns ok=false when the description has no "to" clause;
// the caller substitutes its own default.
func ExtractCounterparty(desc string) (string, bool) {
	m := counterpartyRe.FindStringSubmatch(desc)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	fields := strings.Fields(name)
	if len(fields) > 1 && honorifics[strings.ToLower(strings.TrimSuffix(fields[0], "."))] {
		name = strings.Join(fields[1:], " ")
	}
	return name, true
}

// vendorPrefix maps a known description prefix to its canonical vendor name.
const (
	vendorPrefix    = "airwallex expenses"
	vendorCanonical = "Airwallex Expenses"
	vendorUnknown   = "Unknown"
)

// VendorFromDescription derives a vendor name from a subscription
// description: known prefixes map to their canonical name, otherwise the
// text before the first dash is used. Empty input yields "Unknown".
func VendorFromDescription(desc string) string {
	v := strings.TrimSpace(desc)
	if v == "" {
		return vendorUnknown
	}
	if strings.HasPrefix(strings.ToLower(v), vendorPrefix) {
		return vendorCanonical
	}
	v = strings.TrimSpace(strings.SplitN(v, "-", 2)[0])
	if v == "" {
		return vendorUnknown
	}
	return v
}
