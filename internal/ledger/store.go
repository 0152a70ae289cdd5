// Package ledger owns the canonical transaction, category, and goal
// lists. Every mutation persists the full list it touched through the
// injected blob store.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/common"
	"github.com/KayanRoberto/strata-cashflow/internal/model"
	"github.com/KayanRoberto/strata-cashflow/internal/service"
	"github.com/google/uuid"
)

// TransactionInput carries the caller-supplied fields of a new
// transaction. The presentation layer validates string formats; the
// store enforces numeric and range invariants.
type TransactionInput struct {
	Date        time.Time
	Type        model.TransactionType
	Description string
	Category    string
	GoalID      string
	Amount      float64
	GoalAmount  float64
}

// GoalInput carries the caller-supplied fields of a new goal.
type GoalInput struct {
	Deadline     *time.Time
	Name         string
	Type         model.GoalType
	TargetAmount float64
}

// Store is the ledger store. It keeps the lists in memory and writes
// each one back in full after every mutation.
type Store struct {
	blobs        service.BlobStore
	now          func() time.Time
	transactions []model.Transaction
	categories   []model.Category
	goals        []model.Goal
}

// NewStore loads the persisted lists through the given blob store.
// A missing category blob seeds the default catalog and persists it.
func NewStore(ctx context.Context, blobs service.BlobStore) (*Store, error) {
	s := &Store{
		blobs: blobs,
		now:   time.Now,
	}

	if err := loadBlob(ctx, blobs, service.KeyTransactions, &s.transactions); err != nil {
		return nil, err
	}
	if err := loadBlob(ctx, blobs, service.KeyGoals, &s.goals); err != nil {
		return nil, err
	}

	err := loadBlob(ctx, blobs, service.KeyCategories, &s.categories)
	switch {
	case err != nil:
		return nil, err
	case s.categories == nil:
		s.categories = DefaultCategories()
		if err := s.persistCategories(ctx); err != nil {
			return nil, err
		}
		slog.Info("seeded default categories", "count", len(s.categories))
	}

	return s, nil
}

func loadBlob(ctx context.Context, blobs service.BlobStore, key string, dst any) error {
	data, err := blobs.Read(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", common.ErrStorageCorrupted, key, err)
	}
	return nil
}

// AddTransaction records a new transaction at the head of the list.
// When the input carries a goal allocation (GoalID set, GoalAmount > 0)
// and the goal exists, the goal balance is incremented and a mirrored
// expense transaction is synthesized under the savings category.
func (s *Store) AddTransaction(ctx context.Context, input TransactionInput) (*model.Transaction, error) {
	txn := model.Transaction{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
		CreatedAt:   s.now(),
		GoalID:      input.GoalID,
		GoalAmount:  input.GoalAmount,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	head := []model.Transaction{txn}

	if input.GoalID != "" && input.GoalAmount > 0 {
		if goal := s.findGoal(input.GoalID); goal != nil {
			goal.CurrentAmount += input.GoalAmount
			if err := s.persistGoals(ctx); err != nil {
				return nil, err
			}

			leg := model.Transaction{
				ID:          uuid.NewString(),
				Type:        model.TypeExpense,
				Amount:      input.GoalAmount,
				Description: fmt.Sprintf("Depósito na meta: %s", goal.Name),
				Category:    model.SavingsCategory,
				Date:        input.Date,
				CreatedAt:   s.now(),
				GoalID:      goal.ID,
			}
			head = []model.Transaction{leg, txn}

			slog.Info("allocated transaction to goal",
				"goal", goal.Name, "amount", input.GoalAmount)
		}
	}

	s.transactions = append(head, s.transactions...)
	if err := s.persistTransactions(ctx); err != nil {
		return nil, err
	}

	slog.Info("added transaction",
		"id", txn.ID, "type", txn.Type, "amount", txn.Amount, "category", txn.Category)
	return &txn, nil
}

// RemoveTransaction deletes a transaction by id. Goal balances are
// deliberately left untouched: deleting a record does not undo its
// downstream effects, mirroring bank-ledger semantics.
func (s *Store) RemoveTransaction(ctx context.Context, id string) error {
	kept := s.transactions[:0:0]
	for _, txn := range s.transactions {
		if txn.ID != id {
			kept = append(kept, txn)
		}
	}
	if len(kept) == len(s.transactions) {
		return nil
	}

	s.transactions = kept
	if err := s.persistTransactions(ctx); err != nil {
		return err
	}

	slog.Info("removed transaction", "id", id)
	return nil
}

// AddGoal records a new goal with a zero starting balance.
func (s *Store) AddGoal(ctx context.Context, input GoalInput) (*model.Goal, error) {
	goal := model.Goal{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Type:          input.Type,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: 0,
		Deadline:      input.Deadline,
		CreatedAt:     s.now(),
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	s.goals = append([]model.Goal{goal}, s.goals...)
	if err := s.persistGoals(ctx); err != nil {
		return nil, err
	}

	slog.Info("added goal", "id", goal.ID, "name", goal.Name, "target", goal.TargetAmount)
	return &goal, nil
}

// DepositToGoal increments a goal's balance and synthesizes the
// mirrored expense transaction. Unknown goal ids and non-positive
// amounts are silent no-ops.
func (s *Store) DepositToGoal(ctx context.Context, goalID string, amount float64) error {
	if amount <= 0 {
		slog.Debug("ignoring non-positive deposit", "goal_id", goalID, "amount", amount)
		return nil
	}

	goal := s.findGoal(goalID)
	if goal == nil {
		slog.Debug("ignoring deposit to unknown goal", "goal_id", goalID)
		return nil
	}

	goal.CurrentAmount += amount
	if err := s.persistGoals(ctx); err != nil {
		return err
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: fmt.Sprintf("Depósito manual na meta: %s", goal.Name),
		Category:    model.SavingsCategory,
		Date:        s.now(),
		CreatedAt:   s.now(),
		GoalID:      goal.ID,
	}
	s.transactions = append([]model.Transaction{txn}, s.transactions...)
	if err := s.persistTransactions(ctx); err != nil {
		return err
	}

	slog.Info("deposited to goal", "goal", goal.Name, "amount", amount, "current", goal.CurrentAmount)
	return nil
}

// WithdrawFromGoal decrements a goal's balance and synthesizes the
// mirrored income transaction. Amounts outside (0, CurrentAmount] and
// unknown goal ids are silent no-ops; callers validate via the form
// bounds.
func (s *Store) WithdrawFromGoal(ctx context.Context, goalID string, amount float64) error {
	goal := s.findGoal(goalID)
	if goal == nil {
		slog.Debug("ignoring withdrawal from unknown goal", "goal_id", goalID)
		return nil
	}
	if amount <= 0 || amount > goal.CurrentAmount {
		slog.Debug("ignoring out-of-range withdrawal",
			"goal", goal.Name, "amount", amount, "current", goal.CurrentAmount)
		return nil
	}

	goal.CurrentAmount -= amount
	if goal.CurrentAmount < 0 {
		goal.CurrentAmount = 0
	}
	if err := s.persistGoals(ctx); err != nil {
		return err
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TypeIncome,
		Amount:      amount,
		Description: fmt.Sprintf("Retirada da meta: %s", goal.Name),
		Category:    model.SavingsCategory,
		Date:        s.now(),
		CreatedAt:   s.now(),
		GoalID:      goal.ID,
	}
	s.transactions = append([]model.Transaction{txn}, s.transactions...)
	if err := s.persistTransactions(ctx); err != nil {
		return err
	}

	slog.Info("withdrew from goal", "goal", goal.Name, "amount", amount, "current", goal.CurrentAmount)
	return nil
}

// Transactions returns a copy of the transaction list, most recent
// first.
func (s *Store) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the category catalog.
func (s *Store) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Goals returns a copy of the goal list, most recent first.
func (s *Store) Goals() []model.Goal {
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) findGoal(id string) *model.Goal {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return &s.goals[i]
		}
	}
	return nil
}

func (s *Store) persistTransactions(ctx context.Context) error {
	return s.persist(ctx, service.KeyTransactions, s.transactions)
}

func (s *Store) persistCategories(ctx context.Context) error {
	return s.persist(ctx, service.KeyCategories, s.categories)
}

func (s *Store) persistGoals(ctx context.Context) error {
	return s.persist(ctx, service.KeyGoals, s.goals)
}

func (s *Store) persist(ctx context.Context, key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.blobs.Write(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
