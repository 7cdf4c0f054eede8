package model

// Summary aggregates one owner's transactions into totals.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}
