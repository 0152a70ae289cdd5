package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/KayanRoberto/strata-cashflow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()

	blobs := storage.NewMemoryStore()
	store, err := NewStore(context.Background(), blobs)
	require.NoError(t, err)
	return store, blobs
}

func expenseInput(amount float64) TransactionInput {
	return TransactionInput{
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: "Mercado",
		Category:    "Alimentação",
		Date:        time.Now(),
	}
}

func TestNewStore_SeedsDefaultCategories(t *testing.T) {
	store, blobs := newTestStore(t)

	cats := store.Categories()
	require.Len(t, cats, 10)
	assert.Equal(t, "Alimentação", cats[0].Name)

	// Seeding persists so the catalog survives reloads.
	reloaded, err := NewStore(context.Background(), blobs)
	require.NoError(t, err)
	assert.Equal(t, cats, reloaded.Categories())
}

func TestAddTransaction_PrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestStore(t)

	first, err := store.AddTransaction(ctx, expenseInput(50))
	require.NoError(t, err)

	second, err := store.AddTransaction(ctx, TransactionInput{
		Type:        model.TypeIncome,
		Amount:      1500,
		Description: "Salário",
		Category:    "Salário",
		Date:        time.Now(),
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	txns := store.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, second.ID, txns[0].ID, "most recent transaction comes first")

	reloaded, err := NewStore(ctx, blobs)
	require.NoError(t, err)
	assert.Len(t, reloaded.Transactions(), 2)
}

func TestAddTransaction_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddTransaction(ctx, TransactionInput{
		Type:        model.TypeExpense,
		Amount:      -5,
		Description: "inválido",
		Category:    "Lazer",
		Date:        time.Now(),
	})
	require.Error(t, err)
	assert.Empty(t, store.Transactions())
}

func TestAddTransaction_WithGoalAllocation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Viagem", Type: model.GoalAccumulated, TargetAmount: 5000})
	require.NoError(t, err)

	txn, err := store.AddTransaction(ctx, TransactionInput{
		Type:        model.TypeIncome,
		Amount:      2000,
		Description: "Salário",
		Category:    "Salário",
		Date:        time.Now(),
		GoalID:      goal.ID,
		GoalAmount:  300,
	})
	require.NoError(t, err)

	goals := store.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, 300.0, goals[0].CurrentAmount)

	txns := store.Transactions()
	require.Len(t, txns, 2)

	leg := txns[0]
	assert.Equal(t, model.TypeExpense, leg.Type)
	assert.Equal(t, 300.0, leg.Amount)
	assert.Equal(t, model.SavingsCategory, leg.Category)
	assert.Equal(t, goal.ID, leg.GoalID)
	assert.NotEqual(t, txn.ID, leg.ID, "synthesized leg gets a distinct id")
	assert.Equal(t, txn.ID, txns[1].ID)
}

func TestAddTransaction_UnknownGoalSkipsAllocation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddTransaction(ctx, TransactionInput{
		Type:        model.TypeIncome,
		Amount:      2000,
		Description: "Salário",
		Category:    "Salário",
		Date:        time.Now(),
		GoalID:      "nonexistent",
		GoalAmount:  300,
	})
	require.NoError(t, err)

	assert.Len(t, store.Transactions(), 1, "no synthesized leg for unknown goal")
	assert.Empty(t, store.Goals())
}

func TestRemoveTransaction(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	txn, err := store.AddTransaction(ctx, expenseInput(80))
	require.NoError(t, err)

	require.NoError(t, store.RemoveTransaction(ctx, txn.ID))
	assert.Empty(t, store.Transactions())

	// Removing an unknown id is a silent no-op.
	require.NoError(t, store.RemoveTransaction(ctx, "nope"))
}

func TestRemoveTransaction_DoesNotReverseGoalBalance(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Reserva", Type: model.GoalMonthly, TargetAmount: 1000})
	require.NoError(t, err)
	require.NoError(t, store.DepositToGoal(ctx, goal.ID, 400))

	deposit := store.Transactions()[0]
	require.NoError(t, store.RemoveTransaction(ctx, deposit.ID))

	assert.Equal(t, 400.0, store.Goals()[0].CurrentAmount,
		"deleting the mirrored transaction must not undo the goal balance")
}

func TestDepositToGoal(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Viagem", Type: model.GoalAccumulated, TargetAmount: 5000})
	require.NoError(t, err)

	require.NoError(t, store.DepositToGoal(ctx, goal.ID, 1000))

	assert.Equal(t, 1000.0, store.Goals()[0].CurrentAmount)

	txns := store.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
	assert.Equal(t, 1000.0, txns[0].Amount)
	assert.Equal(t, goal.ID, txns[0].GoalID)
	assert.Equal(t, model.SavingsCategory, txns[0].Category)
}

func TestDepositToGoal_NoOps(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Viagem", Type: model.GoalAccumulated, TargetAmount: 5000})
	require.NoError(t, err)

	require.NoError(t, store.DepositToGoal(ctx, goal.ID, 0))
	require.NoError(t, store.DepositToGoal(ctx, goal.ID, -10))
	require.NoError(t, store.DepositToGoal(ctx, "nonexistent", 100))

	assert.Equal(t, 0.0, store.Goals()[0].CurrentAmount)
	assert.Empty(t, store.Transactions())
}

func TestWithdrawFromGoal(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Reserva", Type: model.GoalMonthly, TargetAmount: 1000})
	require.NoError(t, err)
	require.NoError(t, store.DepositToGoal(ctx, goal.ID, 500))

	require.NoError(t, store.WithdrawFromGoal(ctx, goal.ID, 200))

	assert.Equal(t, 300.0, store.Goals()[0].CurrentAmount)

	txns := store.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, model.TypeIncome, txns[0].Type)
	assert.Equal(t, 200.0, txns[0].Amount)
	assert.Equal(t, goal.ID, txns[0].GoalID)
}

func TestWithdrawFromGoal_NoOps(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	goal, err := store.AddGoal(ctx, GoalInput{Name: "Reserva", Type: model.GoalMonthly, TargetAmount: 1000})
	require.NoError(t, err)
	require.NoError(t, store.DepositToGoal(ctx, goal.ID, 100))
	before := store.Transactions()

	require.NoError(t, store.WithdrawFromGoal(ctx, goal.ID, 150), "over-balance withdrawal")
	require.NoError(t, store.WithdrawFromGoal(ctx, goal.ID, 0), "zero withdrawal")
	require.NoError(t, store.WithdrawFromGoal(ctx, goal.ID, -5), "negative withdrawal")
	require.NoError(t, store.WithdrawFromGoal(ctx, "nonexistent", 50), "unknown goal")

	assert.Equal(t, 100.0, store.Goals()[0].CurrentAmount)
	assert.Equal(t, before, store.Transactions(), "transaction list unchanged by rejected withdrawals")
}

func TestAccessorsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddTransaction(ctx, expenseInput(10))
	require.NoError(t, err)

	txns := store.Transactions()
	txns[0].Amount = 9999

	assert.Equal(t, 10.0, store.Transactions()[0].Amount)
}
