package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subsRows(data ...[]string) [][]string {
	rows := [][]string{{"Date", "Description", "Debit (AUD)", "Type"}}
	return append(rows, data...)
}

func TestSubscriptions_Basic(t *testing.T) {
	rows := subsRows(
		[]string{"02 Jan 2025", "Microsoft - Office 365", "691.84", "Others"},
	)

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)

	r := out[0]
	assert.Equal(t, 2025, r.Year)
	assert.Equal(t, 1, r.Month)
	assert.Equal(t, "Jan", r.MonthName)
	assert.Equal(t, "Microsoft", r.Vendor)
	assert.Equal(t, "691.84", r.Amount.StringFixed(2))
	assert.Equal(t, "Others", r.Type)
}

func TestSubscriptions_HeaderAfterPreamble(t *testing.T) {
	rows := [][]string{
		{"Subscriptions report"},
		{"Period", "FY25"},
		{"Date", "Description", "Amount", "Type"},
		{"03/02/2025", "Spotify", "11.99", "saas"},
	}

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tech", out[0].Type)
	assert.Equal(t, 2, out[0].Month, "day-first date convention")
	assert.Equal(t, 3, out[0].Date.Day())
}

func TestSubscriptions_NonPositiveAmountsDropped(t *testing.T) {
	rows := subsRows(
		[]string{"02 Jan 2025", "Refund", "-50.00", "Tech"},
		[]string{"03 Jan 2025", "Zero", "0.00", "Tech"},
		[]string{"04 Jan 2025", "Notion", "1,234.56", "Tech"},
	)

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Notion", out[0].Description)
	assert.Equal(t, "1234.56", out[0].Amount.StringFixed(2))
}

func TestSubscriptions_BadDateDropsRow(t *testing.T) {
	rows := subsRows(
		[]string{"soon", "Spotify", "11.99", "Tech"},
		[]string{"05 Jan 2025", "Spotify", "11.99", "Tech"},
	)

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Date.Day())
}

func TestSubscriptions_SourceFilter(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount", "Type", "Source"},
		{"02/01/2025", "Spotify", "11.99", "Tech", "Spend Money"},
		{"03/01/2025", "Transfer", "99.00", "Tech", "receive money"},
	}

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Spotify", out[0].Description)
}

func TestSubscriptions_MissingTypeDefaults(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount"},
		{"02/01/2025", "Mystery Vendor", "10.00"},
	}

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "No Category Found", out[0].Type)
}

func TestSubscriptions_MissingRequiredColumnsFatal(t *testing.T) {
	rows := [][]string{
		{"Description", "Amount"},
		{"Spotify", "11.99"},
	}

	_, err := Subscriptions(rows, testLog)
	require.Error(t, err)

	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Contains(t, mce.Columns, "Date")
}

func TestSubscriptions_TypeAliasColumns(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Debit (AUD)", "Type of Subs expenses"},
		{"02 Jan 2025", "Mailchimp", "49.00", "mkt"},
	}

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Marketing", out[0].Type)
}

func TestSubscriptions_VendorPrefix(t *testing.T) {
	rows := subsRows(
		[]string{"02 Jan 2025", "Airwallex Expenses - March card spend", "100.00", "Other"},
	)

	out, err := Subscriptions(rows, testLog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Airwallex Expenses", out[0].Vendor)
}
