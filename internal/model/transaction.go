package model

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType indicates whether a transaction adds to or subtracts
// from the balance.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Transaction is a single ledger entry. Immutable once recorded except
// for deletion. A non-empty GoalID marks the transaction as the
// automatic counterpart of a goal deposit or withdrawal.
type Transaction struct {
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	GoalID      string          `json:"goalId,omitempty"`
	Amount      float64         `json:"amount"`
	GoalAmount  float64         `json:"goalAmount,omitempty"`
}

// Validate checks structural invariants before the transaction enters
// the ledger.
func (t *Transaction) Validate() error {
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %.2f", t.Amount)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("transaction description is required")
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("transaction category is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// InMonth reports whether the transaction's date falls in the calendar
// month of ref.
func (t *Transaction) InMonth(ref time.Time) bool {
	return t.Date.Month() == ref.Month() && t.Date.Year() == ref.Year()
}
