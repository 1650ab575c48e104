package model

// Fixed business labels applied during classification.
const (
	CategoryTransfers  = "Transfers"
	CategoryAdjustment = "Airwallex Expense"
	CategoryIncomplete = "Incomplete"
	CategoryNone       = "No Category Found"

	CounterpartyAdjustments = "Adjustments"

	StatusIncomplete = "Incomplete"
)
