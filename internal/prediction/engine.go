// Package prediction derives short-horizon forecasts from recent
// monthly aggregates. Everything here is pure and recomputed on each
// render; nothing is persisted.
package prediction

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/model"
)

// windowMonths is the size of the trailing monthly window.
const windowMonths = 3

// monthly holds one month's sums. Months with no transactions stay at
// zero rather than being dropped from the window.
type monthly struct {
	income   float64
	expenses float64
	balance  float64
}

// Predict builds the forecast list: balance projection, per-goal
// completion ETAs, a savings recommendation, and an expense-spike
// alert, sorted by priority descending with insertion order preserved
// within a priority.
func Predict(transactions []model.Transaction, goals []model.Goal, now time.Time) []model.Prediction {
	window := monthlyWindow(transactions, now)

	var avgIncome, avgExpenses float64
	for _, m := range window {
		avgIncome += m.income
		avgExpenses += m.expenses
	}
	avgIncome /= float64(len(window))
	avgExpenses /= float64(len(window))
	avgBalance := avgIncome - avgExpenses

	var predictions []model.Prediction
	predictions = append(predictions, balancePrediction(transactions, window, avgBalance))
	predictions = append(predictions, goalPredictions(transactions, goals, len(window))...)

	if avgBalance > 0 {
		recommended := math.Min(avgBalance*0.3, avgIncome*0.2)
		predictions = append(predictions, model.Prediction{
			Kind:        model.PredictionSavingsRecommendation,
			Title:       "Recomendação de Poupança",
			Description: fmt.Sprintf("Baseado na sua renda, recomendamos economizar R$ %.2f por mês", recommended),
			Value:       recommended,
			Confidence:  model.RatingMedium,
			Priority:    model.RatingMedium,
		})
	}

	if alert, ok := expenseAlert(window, avgIncome); ok {
		predictions = append(predictions, alert)
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Priority.Rank() > predictions[j].Priority.Rank()
	})
	return predictions
}

// monthlyWindow sums income and expenses for the current month and the
// two preceding ones. Index 0 is the current month.
func monthlyWindow(transactions []model.Transaction, now time.Time) [windowMonths]monthly {
	var window [windowMonths]monthly

	for i := 0; i < windowMonths; i++ {
		ref := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		for _, txn := range transactions {
			if !txn.InMonth(ref) {
				continue
			}
			switch txn.Type {
			case model.TypeIncome:
				window[i].income += txn.Amount
			case model.TypeExpense:
				window[i].expenses += txn.Amount
			}
		}
		window[i].balance = window[i].income - window[i].expenses
	}

	return window
}

func balancePrediction(transactions []model.Transaction, window [windowMonths]monthly, avgBalance float64) model.Prediction {
	var currentBalance float64
	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			currentBalance += txn.Amount
		case model.TypeExpense:
			currentBalance -= txn.Amount
		}
	}

	futureBalance := currentBalance + avgBalance*windowMonths

	// Confidence drops when part of the window has no activity at all.
	active := 0
	for _, m := range window {
		if m.income != 0 || m.expenses != 0 {
			active++
		}
	}
	confidence := model.RatingMedium
	if active == windowMonths {
		confidence = model.RatingHigh
	}

	priority := model.RatingLow
	if futureBalance < currentBalance {
		priority = model.RatingHigh
	}

	return model.Prediction{
		Kind:        model.PredictionBalance,
		Title:       "Previsão de Saldo (3 meses)",
		Description: fmt.Sprintf("Com base no seu padrão atual, você terá aproximadamente R$ %.2f em 3 meses", futureBalance),
		Value:       futureBalance,
		Confidence:  confidence,
		Priority:    priority,
	}
}

// goalPredictions estimates months to completion for every incomplete
// goal with goal-linked activity. Contributions count expenses as
// positive (money in) and incomes as negative (withdrawals); goals with
// a non-positive average contribution produce no entry.
func goalPredictions(transactions []model.Transaction, goals []model.Goal, windowLen int) []model.Prediction {
	var out []model.Prediction

	for _, goal := range goals {
		if goal.Completed() {
			continue
		}

		var contribution float64
		linked := false
		for _, txn := range transactions {
			if txn.GoalID != goal.ID {
				continue
			}
			linked = true
			if txn.Type == model.TypeExpense {
				contribution += txn.Amount
			} else {
				contribution -= txn.Amount
			}
		}
		if !linked {
			continue
		}

		avgMonthly := contribution / math.Max(1, float64(windowLen))
		if avgMonthly <= 0 {
			continue
		}

		remaining := goal.TargetAmount - goal.CurrentAmount
		months := int(math.Ceil(remaining / avgMonthly))

		confidence := model.RatingMedium
		if months <= 12 {
			confidence = model.RatingHigh
		}
		priority := model.RatingMedium
		if months <= 6 {
			priority = model.RatingHigh
		}

		out = append(out, model.Prediction{
			Kind:        model.PredictionGoalCompletion,
			Title:       fmt.Sprintf("Meta: %s", goal.Name),
			Description: fmt.Sprintf("No ritmo atual, você completará esta meta em %d meses", months),
			GoalID:      goal.ID,
			Value:       float64(months),
			Confidence:  confidence,
			Priority:    priority,
		})
	}

	return out
}

// expenseAlert fires when the current month's expenses exceed the prior
// month's by more than 10% of the average income.
func expenseAlert(window [windowMonths]monthly, avgIncome float64) (model.Prediction, bool) {
	increase := window[0].expenses - window[1].expenses
	if increase <= avgIncome*0.1 {
		return model.Prediction{}, false
	}

	return model.Prediction{
		Kind:        model.PredictionBalance,
		Title:       "Alerta de Gastos",
		Description: fmt.Sprintf("Seus gastos aumentaram R$ %.2f no último mês. Considere revisar suas despesas.", increase),
		Value:       increase,
		Confidence:  model.RatingHigh,
		Priority:    model.RatingHigh,
	}, true
}
