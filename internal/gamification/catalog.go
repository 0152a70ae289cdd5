package gamification

import "github.com/KayanRoberto/strata-cashflow/internal/model"

// catalog is the fixed achievement list. Only IsUnlocked/UnlockedAt
// ever change on the persisted copies; the definitions here are
// immutable.
var catalog = []model.Achievement{
	{
		ID:          "first_goal",
		Title:       "Primeiro Passo",
		Description: "Crie sua primeira meta financeira",
		Icon:        "🎯",
		Tier:        model.TierBronze,
		Condition:   model.AchievementCondition{Kind: model.ConditionGoalCount, Threshold: 1},
	},
	{
		ID:          "goal_master",
		Title:       "Mestre das Metas",
		Description: "Complete sua primeira meta",
		Icon:        "🏆",
		Tier:        model.TierGold,
		Condition:   model.AchievementCondition{Kind: model.ConditionGoalCompleted, Threshold: 1},
	},
	{
		ID:          "savings_starter",
		Title:       "Poupador Iniciante",
		Description: "Economize R$ 1.000",
		Icon:        "💰",
		Tier:        model.TierBronze,
		Condition:   model.AchievementCondition{Kind: model.ConditionBalanceMilestone, Threshold: 1000},
	},
	{
		ID:          "savings_pro",
		Title:       "Poupador Profissional",
		Description: "Economize R$ 10.000",
		Icon:        "💎",
		Tier:        model.TierDiamond,
		Condition:   model.AchievementCondition{Kind: model.ConditionBalanceMilestone, Threshold: 10000},
	},
	{
		ID:          "transaction_expert",
		Title:       "Expert em Transações",
		Description: "Registre 100 transações",
		Icon:        "📊",
		Tier:        model.TierSilver,
		Condition:   model.AchievementCondition{Kind: model.ConditionTransactionCount, Threshold: 100},
	},
	{
		ID:          "consistency_king",
		Title:       "Rei da Consistência",
		Description: "Mantenha uma sequência de 30 dias poupando",
		Icon:        "🔥",
		Tier:        model.TierGold,
		Condition:   model.AchievementCondition{Kind: model.ConditionSavingsStreak, Threshold: 30},
	},
}

// Catalog returns a copy of the fixed achievement definitions, all
// locked.
func Catalog() []model.Achievement {
	out := make([]model.Achievement, len(catalog))
	copy(out, catalog)
	return out
}
