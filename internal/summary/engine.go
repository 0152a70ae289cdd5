// Package summary computes aggregate views of the transaction list.
// Every function is pure: same inputs, same result, no side effects.
package summary

import (
	"sort"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/model"
)

// Financial partitions the ledger by type and sums amounts, overall and
// for the calendar month containing now.
func Financial(transactions []model.Transaction, now time.Time) model.FinancialSummary {
	var s model.FinancialSummary

	for _, txn := range transactions {
		monthly := txn.InMonth(now)

		switch txn.Type {
		case model.TypeIncome:
			s.TotalIncome += txn.Amount
			if monthly {
				s.MonthlyIncome += txn.Amount
			}
		case model.TypeExpense:
			s.TotalExpenses += txn.Amount
			if monthly {
				s.MonthlyExpenses += txn.Amount
			}
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpenses
	s.MonthlyBalance = s.MonthlyIncome - s.MonthlyExpenses
	return s
}

// ByCategory groups expense transactions by category name and computes
// each group's share of total expenses. Categories without expense
// transactions do not appear. Results are sorted by category name; the
// color comes from the catalog, falling back to the default when the
// name has no matching record.
func ByCategory(transactions []model.Transaction, categories []model.Category) []model.CategorySummary {
	totals := make(map[string]float64)
	var totalExpenses float64

	for _, txn := range transactions {
		if txn.Type != model.TypeExpense {
			continue
		}
		totals[txn.Category] += txn.Amount
		totalExpenses += txn.Amount
	}

	colors := make(map[string]string, len(categories))
	for _, cat := range categories {
		colors[cat.Name] = cat.Color
	}

	out := make([]model.CategorySummary, 0, len(totals))
	for name, amount := range totals {
		color, ok := colors[name]
		if !ok {
			color = model.DefaultCategoryColor
		}

		var percentage float64
		if totalExpenses > 0 {
			percentage = amount / totalExpenses * 100
		}

		out = append(out, model.CategorySummary{
			Category:   name,
			Amount:     amount,
			Color:      color,
			Percentage: percentage,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
