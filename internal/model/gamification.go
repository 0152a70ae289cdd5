package model

import "time"

// AchievementTier is the visual rank of an achievement.
type AchievementTier string

const (
	// TierBronze is the entry tier.
	TierBronze AchievementTier = "bronze"
	// TierSilver is the mid tier.
	TierSilver AchievementTier = "silver"
	// TierGold is the high tier.
	TierGold AchievementTier = "gold"
	// TierDiamond is the top tier.
	TierDiamond AchievementTier = "diamond"
)

// ConditionKind names the metric an achievement condition is checked
// against.
type ConditionKind string

const (
	// ConditionGoalCount counts goals created.
	ConditionGoalCount ConditionKind = "goal_count"
	// ConditionGoalCompleted counts goals that reached their target.
	ConditionGoalCompleted ConditionKind = "goal_completed"
	// ConditionTransactionCount counts recorded transactions.
	ConditionTransactionCount ConditionKind = "transaction_count"
	// ConditionBalanceMilestone checks cumulative savings (totalSaved).
	ConditionBalanceMilestone ConditionKind = "balance_milestone"
	// ConditionSavingsStreak checks the capped goal-linked transaction count.
	ConditionSavingsStreak ConditionKind = "savings_streak"
)

// AchievementCondition pairs a metric with the threshold that unlocks
// the achievement.
type AchievementCondition struct {
	Kind      ConditionKind `json:"type"`
	Threshold float64       `json:"value"`
}

// Achievement is one entry of the fixed catalog. Only IsUnlocked and
// UnlockedAt ever change, and only from locked to unlocked.
type Achievement struct {
	UnlockedAt  *time.Time           `json:"unlockedAt,omitempty"`
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Tier        AchievementTier      `json:"type"`
	Condition   AchievementCondition `json:"condition"`
	IsUnlocked  bool                 `json:"isUnlocked"`
}

// UserStats is the progress snapshot derived in full from the ledger on
// every change. The persisted copy is a cache, never source of truth.
type UserStats struct {
	Level             int     `json:"level"`
	Experience        int     `json:"experience"`
	ExperienceToNext  int     `json:"experienceToNext"`
	GoalsCompleted    int     `json:"goalsCompleted"`
	SavingsStreak     int     `json:"savingsStreak"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalSaved        float64 `json:"totalSaved"`
}
