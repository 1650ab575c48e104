package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,200.00", "1200"},
		{"1,234.56", "1234.56"},
		{"AUD 99.50", "99.5"},
		{"-50.00", "-50"},
		{"", "0"},
		{"n/a", "0"},
		{"1.2.3", "0"},
		{"  42 ", "42"},
	}
	for _, tt := range tests {
		got := CleanNumber(tt.in)
		assert.Equal(t, tt.want, got.String(), "CleanNumber(%q)", tt.in)
	}
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "Christine Thomas", NormalizeSpace("Christine  Thomas"))
	assert.Equal(t, "Christine Thomas", NormalizeSpace(" Christine Thomas "))
	assert.Equal(t, "a b c", NormalizeSpace("a\t b\n  c"))
	assert.Equal(t, "", NormalizeSpace("   "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "James Brook", DisplayName("james  brook"))
	assert.Equal(t, "James Brook", DisplayName("JAMES BROOK"))
}

func TestExtractCounterparty(t *testing.T) {
	name, ok := ExtractCounterparty("payout to Mr James Brook")
	require.True(t, ok)
	assert.Equal(t, "James Brook", name)

	name, ok = ExtractCounterparty("transfer to Acme Pty Ltd, ref 123")
	require.True(t, ok)
	assert.Equal(t, "Acme Pty Ltd", name)

	name, ok = ExtractCounterparty("payment to Jane Doe (invoice 42)")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
}

func TestExtractCounterparty_WholeWordOnly(t *testing.T) {
	// "into" must not match the "to" clause.
	_, ok := ExtractCounterparty("paid into savings")
	assert.False(t, ok)
}

func TestExtractCounterparty_NoMatch(t *testing.T) {
	_, ok := ExtractCounterparty("monthly card fee")
	assert.False(t, ok)

	_, ok = ExtractCounterparty("")
	assert.False(t, ok)
}

func TestExtractCounterparty_FirstOccurrenceWins(t *testing.T) {
	name, ok := ExtractCounterparty("sent to Alice to Bob")
	require.True(t, ok)
	assert.Equal(t, "Alice to Bob", name)
}

func TestVendorFromDescription(t *testing.T) {
	assert.Equal(t, "Airwallex Expenses", VendorFromDescription("Airwallex Expenses - March card spend"))
	assert.Equal(t, "Microsoft", VendorFromDescription("Microsoft - Office 365"))
	assert.Equal(t, "Spotify", VendorFromDescription("Spotify"))
	assert.Equal(t, "Unknown", VendorFromDescription(""))
	assert.Equal(t, "Unknown", VendorFromDescription("   "))
	assert.Equal(t, "Unknown", VendorFromDescription("- no vendor"))
}
