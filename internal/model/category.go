package model

// Category describes a spending or income bucket. Transactions join to
// categories by name.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Icon  string          `json:"icon"`
	Type  TransactionType `json:"type"`
}

// DefaultCategoryColor is used when a transaction references a category
// name with no matching record.
const DefaultCategoryColor = "#8884d8"

// SavingsCategory is the pseudo-expense category used for goal-linked
// synthesized transactions.
const SavingsCategory = "Poupança/Metas"
