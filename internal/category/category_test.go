package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_Synonyms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SaaS ", Tech},
		{"software", Tech},
		{"IT", Tech},
		{"cloud", Tech},
		{"mkt", Marketing},
		{"Marketing", Marketing},
		{"sustainability", Green},
		{"green", Green},
		{"other", Others},
		{"Others", Others},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "Canonicalize(%q)", tt.in)
	}
}

func TestCanonicalize_SubstringHeuristics(t *testing.T) {
	assert.Equal(t, Tech, Canonicalize("tech subscriptions"))
	assert.Equal(t, Tech, Canonicalize("information technology"))
	assert.Equal(t, Marketing, Canonicalize("email marketing tools"))
	assert.Equal(t, Green, Canonicalize("sustainable energy"))
	assert.Equal(t, Others, Canonicalize("misc / other"))
}

func TestCanonicalize_AdHocFallback(t *testing.T) {
	assert.Equal(t, "Random Xyz", Canonicalize("random xyz"))
	assert.Equal(t, "Travel", Canonicalize("Travel!!"))
}

func TestCanonicalize_Empty(t *testing.T) {
	assert.Equal(t, Others, Canonicalize(""))
	assert.Equal(t, Others, Canonicalize("  123 "))
}

func TestCanonicalize_PunctuationStripped(t *testing.T) {
	assert.Equal(t, Tech, Canonicalize("Tech & Software"))
	assert.Equal(t, Marketing, Canonicalize("  mkt.  "))
}
