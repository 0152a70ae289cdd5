package model

import (
	"fmt"
	"strings"
	"time"
)

// GoalType distinguishes monthly savings boxes from accumulated ones.
// Informational only; it does not change any computation.
type GoalType string

const (
	// GoalMonthly is a goal the user intends to fill every month.
	GoalMonthly GoalType = "monthly"
	// GoalAccumulated is a long-running goal with no monthly cadence.
	GoalAccumulated GoalType = "accumulated"
)

// Goal is a savings target ("caixinha"). CurrentAmount changes only
// through deposit/withdraw operations, each mirrored by a synthesized
// transaction of the opposite economic sign.
type Goal struct {
	CreatedAt     time.Time  `json:"createdAt"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          GoalType   `json:"type"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
}

// Validate checks structural invariants before the goal enters the
// ledger.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("goal name is required")
	}
	if g.Type != GoalMonthly && g.Type != GoalAccumulated {
		return fmt.Errorf("invalid goal type: %q", g.Type)
	}
	if g.TargetAmount < 0 {
		return fmt.Errorf("goal target amount cannot be negative, got %.2f", g.TargetAmount)
	}
	if g.CurrentAmount < 0 {
		return fmt.Errorf("goal current amount cannot be negative, got %.2f", g.CurrentAmount)
	}
	return nil
}

// Completed reports whether the goal has reached its target.
func (g *Goal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Progress returns completion as a percentage, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 100
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
