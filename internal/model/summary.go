package model

// FinancialSummary aggregates the ledger overall and for the current
// calendar month. Derived, never persisted.
type FinancialSummary struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	Balance         float64 `json:"balance"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyBalance  float64 `json:"monthlyBalance"`
}

// CategorySummary is the expense total for one category and its share
// of all expenses. Derived, never persisted.
type CategorySummary struct {
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}
