package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionRecord is one normalized row of a subscriptions export.
// Rows with non-positive amounts or unparseable dates never become records.
type SubscriptionRecord struct {
	Date        time.Time
	Description string
	Vendor      string // derived from Description
	Amount      decimal.Decimal
	Type        string // canonical category

	// Derived from Date.
	Year      int
	Month     int    // 1-12
	MonthName string // 3-letter, e.g. "Mar"
	MonthYear time.Time
}
