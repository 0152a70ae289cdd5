// Package gamification derives the user-progress snapshot from the
// ledger and drives the one-way achievement unlock state machine.
package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/common"
	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/KayanRoberto/strata-cashflow/internal/service"
)

// maxStreak caps the savings streak metric.
const maxStreak = 30

// recentLimit caps the Recent() helper.
const recentLimit = 3

// State is the persisted gamification blob. The stats copy is a cache;
// the ledger remains the source of truth.
type State struct {
	Achievements []model.Achievement `json:"achievements"`
	UserStats    model.UserStats     `json:"userStats"`
}

// Engine evaluates achievements against freshly derived stats and
// persists unlock state through the blob store.
type Engine struct {
	blobs service.BlobStore
	now   func() time.Time
	state State
}

// NewEngine loads the persisted gamification state, falling back to the
// locked catalog on first run.
func NewEngine(ctx context.Context, blobs service.BlobStore) (*Engine, error) {
	e := &Engine{
		blobs: blobs,
		now:   time.Now,
		state: State{Achievements: Catalog()},
	}

	data, err := blobs.Read(ctx, service.KeyGamification)
	switch {
	case errors.Is(err, common.ErrNotFound):
		return e, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load gamification state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gamification state: %v", common.ErrStorageCorrupted, err)
	}
	if len(state.Achievements) > 0 {
		e.state = state
	}
	return e, nil
}

// CalculateStats derives the progress snapshot from the ledger. Pure
// function of its inputs.
//
// SavingsStreak is a capped count of goal-linked transactions, not an
// actual consecutive-day streak; the historical name is kept.
func CalculateStats(transactions []model.Transaction, goals []model.Goal) model.UserStats {
	var totalIncome, totalExpenses float64
	var streak int

	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			totalIncome += txn.Amount
		case model.TypeExpense:
			totalExpenses += txn.Amount
		}
		if txn.GoalID != "" {
			streak++
		}
	}
	if streak > maxStreak {
		streak = maxStreak
	}

	var completed int
	for _, goal := range goals {
		if goal.Completed() {
			completed++
		}
	}

	balance := totalIncome - totalExpenses
	totalSaved := balance
	if totalSaved < 0 {
		totalSaved = 0
	}

	rawScore := len(transactions) + completed*10

	return model.UserStats{
		Level:             rawScore/20 + 1,
		Experience:        rawScore % 100,
		ExperienceToNext:  100 - rawScore%100,
		GoalsCompleted:    completed,
		SavingsStreak:     streak,
		TotalTransactions: len(transactions),
		TotalSaved:        totalSaved,
	}
}

// Evaluate recomputes the stats, unlocks any locked achievement whose
// condition now holds, persists the state, and returns only the
// achievements unlocked by this evaluation. Unlocking is monotonic:
// already-unlocked achievements are never re-reported or reverted.
func (e *Engine) Evaluate(ctx context.Context, transactions []model.Transaction, goals []model.Goal) ([]model.Achievement, error) {
	stats := CalculateStats(transactions, goals)
	e.state.UserStats = stats

	var unlocked []model.Achievement
	for i := range e.state.Achievements {
		ach := &e.state.Achievements[i]
		if ach.IsUnlocked {
			continue
		}
		if !conditionMet(ach.Condition, stats, goals) {
			continue
		}

		when := e.now()
		ach.IsUnlocked = true
		ach.UnlockedAt = &when
		unlocked = append(unlocked, *ach)

		slog.Info("achievement unlocked", "id", ach.ID, "title", ach.Title, "tier", ach.Tier)
	}

	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return unlocked, nil
}

func conditionMet(cond model.AchievementCondition, stats model.UserStats, goals []model.Goal) bool {
	switch cond.Kind {
	case model.ConditionGoalCount:
		return float64(len(goals)) >= cond.Threshold
	case model.ConditionGoalCompleted:
		return float64(stats.GoalsCompleted) >= cond.Threshold
	case model.ConditionTransactionCount:
		return float64(stats.TotalTransactions) >= cond.Threshold
	case model.ConditionBalanceMilestone:
		// Money moved into goals is spent from the balance's point of
		// view but still counts as savings for the milestone.
		var inGoals float64
		for _, goal := range goals {
			inGoals += goal.CurrentAmount
		}
		return stats.TotalSaved >= cond.Threshold || inGoals >= cond.Threshold
	case model.ConditionSavingsStreak:
		return float64(stats.SavingsStreak) >= cond.Threshold
	default:
		return false
	}
}

// Achievements returns a copy of the full catalog with current unlock
// state.
func (e *Engine) Achievements() []model.Achievement {
	out := make([]model.Achievement, len(e.state.Achievements))
	copy(out, e.state.Achievements)
	return out
}

// Stats returns the most recently evaluated snapshot.
func (e *Engine) Stats() model.UserStats {
	return e.state.UserStats
}

// Recent returns the unlocked achievements, most recent first, capped
// to the three latest.
func (e *Engine) Recent() []model.Achievement {
	var unlocked []model.Achievement
	for _, ach := range e.state.Achievements {
		if ach.IsUnlocked {
			unlocked = append(unlocked, ach)
		}
	}

	sort.SliceStable(unlocked, func(i, j int) bool {
		var ti, tj time.Time
		if unlocked[i].UnlockedAt != nil {
			ti = *unlocked[i].UnlockedAt
		}
		if unlocked[j].UnlockedAt != nil {
			tj = *unlocked[j].UnlockedAt
		}
		return ti.After(tj)
	})

	if len(unlocked) > recentLimit {
		unlocked = unlocked[:recentLimit]
	}
	return unlocked
}

func (e *Engine) persist(ctx context.Context) error {
	data, err := json.Marshal(e.state)
	if err != nil {
		return fmt.Errorf("failed to encode gamification state: %w", err)
	}
	if err := e.blobs.Write(ctx, service.KeyGamification, data); err != nil {
		return fmt.Errorf("failed to persist gamification state: %w", err)
	}
	return nil
}
