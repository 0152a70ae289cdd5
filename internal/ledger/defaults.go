package ledger

import "github.com/KayanRoberto/strata-cashflow/internal/model"

// defaultCategories is the catalog seeded on first run, when no
// category blob exists yet. "Poupança/Metas" is the pseudo-expense
// bucket reserved for goal-linked synthesized transactions.
var defaultCategories = []model.Category{
	{ID: "1", Name: "Alimentação", Color: "#FF6B6B", Icon: "🍽️", Type: model.TypeExpense},
	{ID: "2", Name: "Transporte", Color: "#4ECDC4", Icon: "🚗", Type: model.TypeExpense},
	{ID: "3", Name: "Moradia", Color: "#45B7D1", Icon: "🏠", Type: model.TypeExpense},
	{ID: "4", Name: "Saúde", Color: "#96CEB4", Icon: "💊", Type: model.TypeExpense},
	{ID: "5", Name: "Educação", Color: "#FFEAA7", Icon: "📚", Type: model.TypeExpense},
	{ID: "6", Name: "Lazer", Color: "#DDA0DD", Icon: "🎉", Type: model.TypeExpense},
	{ID: "10", Name: model.SavingsCategory, Color: "#8B5CF6", Icon: "🎯", Type: model.TypeExpense},
	{ID: "7", Name: "Salário", Color: "#55A3FF", Icon: "💰", Type: model.TypeIncome},
	{ID: "8", Name: "Freelance", Color: "#26D0CE", Icon: "💻", Type: model.TypeIncome},
	{ID: "9", Name: "Investimentos", Color: "#FFA726", Icon: "📈", Type: model.TypeIncome},
}

// DefaultCategories returns a copy of the seed catalog.
func DefaultCategories() []model.Category {
	out := make([]model.Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}
