package gamification

import (
	"context"
	"testing"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/KayanRoberto/strata-cashflow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *storage.MemoryStore) {
	t.Helper()

	blobs := storage.NewMemoryStore()
	engine, err := NewEngine(context.Background(), blobs)
	require.NoError(t, err)
	return engine, blobs
}

func incomeTxn(amount float64) model.Transaction {
	return model.Transaction{Type: model.TypeIncome, Amount: amount}
}

func expenseTxn(amount float64) model.Transaction {
	return model.Transaction{Type: model.TypeExpense, Amount: amount}
}

func goalTxn(goalID string, amount float64) model.Transaction {
	return model.Transaction{Type: model.TypeExpense, Amount: amount, GoalID: goalID}
}

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		goals        []model.Goal
		want         model.UserStats
	}{
		{
			name: "empty ledger",
			want: model.UserStats{Level: 1, Experience: 0, ExperienceToNext: 100},
		},
		{
			name: "balance and counts",
			transactions: []model.Transaction{
				incomeTxn(1500),
				expenseTxn(300),
			},
			want: model.UserStats{
				Level:             1,
				Experience:        2,
				ExperienceToNext:  98,
				TotalTransactions: 2,
				TotalSaved:        1200,
			},
		},
		{
			name: "negative balance floors totalSaved at zero",
			transactions: []model.Transaction{
				incomeTxn(100),
				expenseTxn(300),
			},
			want: model.UserStats{
				Level:             1,
				Experience:        2,
				ExperienceToNext:  98,
				TotalTransactions: 2,
				TotalSaved:        0,
			},
		},
		{
			name: "completed goals weigh ten transactions each",
			transactions: []model.Transaction{
				incomeTxn(500),
			},
			goals: []model.Goal{
				{TargetAmount: 100, CurrentAmount: 100},
				{TargetAmount: 100, CurrentAmount: 250},
				{TargetAmount: 100, CurrentAmount: 50},
			},
			// rawScore = 1 + 2*10 = 21
			want: model.UserStats{
				Level:             2,
				Experience:        21,
				ExperienceToNext:  79,
				GoalsCompleted:    2,
				TotalTransactions: 1,
				TotalSaved:        500,
			},
		},
		{
			name: "savings streak caps at 30",
			transactions: func() []model.Transaction {
				txns := make([]model.Transaction, 0, 35)
				for i := 0; i < 35; i++ {
					txns = append(txns, goalTxn("g1", 10))
				}
				return txns
			}(),
			want: model.UserStats{
				Level:             2,
				Experience:        35,
				ExperienceToNext:  65,
				SavingsStreak:     30,
				TotalTransactions: 35,
				TotalSaved:        0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStats(tt.transactions, tt.goals)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_FirstGoalAchievement(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	unlocked, err := engine.Evaluate(ctx, nil, []model.Goal{{ID: "g1", Name: "Viagem", TargetAmount: 5000}})
	require.NoError(t, err)

	require.Len(t, unlocked, 1)
	assert.Equal(t, "first_goal", unlocked[0].ID)
	require.NotNil(t, unlocked[0].UnlockedAt)
}

func TestEvaluate_SavingsStarterExample(t *testing.T) {
	// Creating a goal and depositing 1000 unlocks savings_starter but
	// not savings_pro.
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	goals := []model.Goal{{ID: "g1", Name: "Viagem", TargetAmount: 5000, CurrentAmount: 1000}}
	transactions := []model.Transaction{goalTxn("g1", 1000)}

	unlocked, err := engine.Evaluate(ctx, transactions, goals)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, ach := range unlocked {
		ids[ach.ID] = true
	}
	assert.True(t, ids["savings_starter"])
	assert.True(t, ids["first_goal"])
	assert.False(t, ids["savings_pro"])

	for _, ach := range engine.Achievements() {
		if ach.ID == "savings_pro" {
			assert.False(t, ach.IsUnlocked)
		}
	}
}

func TestEvaluate_TransactionExpertExample(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	transactions := make([]model.Transaction, 0, 101)
	for i := 0; i < 101; i++ {
		transactions = append(transactions, incomeTxn(10))
	}

	unlocked, err := engine.Evaluate(ctx, transactions, nil)
	require.NoError(t, err)

	var ids []string
	for _, ach := range unlocked {
		ids = append(ids, ach.ID)
	}
	assert.Contains(t, ids, "transaction_expert")
	assert.Equal(t, 101, engine.Stats().TotalTransactions)
}

func TestEvaluate_NeverReportsTwice(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	goals := []model.Goal{{ID: "g1", Name: "Viagem", TargetAmount: 5000}}

	unlocked, err := engine.Evaluate(ctx, nil, goals)
	require.NoError(t, err)
	require.NotEmpty(t, unlocked)

	again, err := engine.Evaluate(ctx, nil, goals)
	require.NoError(t, err)
	assert.Empty(t, again, "same ledger must not re-report unlocks")
}

func TestEvaluate_UnlockIsMonotonic(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	goals := []model.Goal{{ID: "g1", Name: "Viagem", TargetAmount: 5000}}
	_, err := engine.Evaluate(ctx, nil, goals)
	require.NoError(t, err)

	// The goal disappears from the ledger; first_goal stays unlocked.
	_, err = engine.Evaluate(ctx, nil, nil)
	require.NoError(t, err)

	for _, ach := range engine.Achievements() {
		if ach.ID == "first_goal" {
			assert.True(t, ach.IsUnlocked)
			assert.NotNil(t, ach.UnlockedAt)
		}
	}
}

func TestEvaluate_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	engine, blobs := newTestEngine(t)

	goals := []model.Goal{{ID: "g1", Name: "Viagem", TargetAmount: 5000}}
	_, err := engine.Evaluate(ctx, nil, goals)
	require.NoError(t, err)

	reloaded, err := NewEngine(ctx, blobs)
	require.NoError(t, err)

	again, err := reloaded.Evaluate(ctx, nil, goals)
	require.NoError(t, err)
	assert.Empty(t, again, "unlock state must survive reload")
}

func TestRecent(t *testing.T) {
	engine, _ := newTestEngine(t)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range engine.state.Achievements {
		if i >= 4 {
			break
		}
		when := base.AddDate(0, 0, i)
		engine.state.Achievements[i].IsUnlocked = true
		engine.state.Achievements[i].UnlockedAt = &when
	}

	recent := engine.Recent()
	require.Len(t, recent, 3)
	assert.True(t, recent[0].UnlockedAt.After(*recent[1].UnlockedAt))
	assert.True(t, recent[1].UnlockedAt.After(*recent[2].UnlockedAt))
}

func TestRecent_EmptyWhenNothingUnlocked(t *testing.T) {
	engine, _ := newTestEngine(t)
	assert.Empty(t, engine.Recent())
}
