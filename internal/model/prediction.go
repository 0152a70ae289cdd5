package model

// PredictionKind names the forecast family a prediction belongs to.
type PredictionKind string

const (
	// PredictionBalance projects the balance forward.
	PredictionBalance PredictionKind = "balance"
	// PredictionGoalCompletion estimates months until a goal completes.
	PredictionGoalCompletion PredictionKind = "goal_completion"
	// PredictionSavingsRecommendation suggests a monthly savings amount.
	PredictionSavingsRecommendation PredictionKind = "savings_recommendation"
)

// Rating is a coarse low/medium/high scale used for both prediction
// confidence and priority.
type Rating string

const (
	// RatingLow is the lowest rating.
	RatingLow Rating = "low"
	// RatingMedium is the middle rating.
	RatingMedium Rating = "medium"
	// RatingHigh is the highest rating.
	RatingHigh Rating = "high"
)

// Rank maps a rating onto an ordinal for sorting.
func (r Rating) Rank() int {
	switch r {
	case RatingHigh:
		return 3
	case RatingMedium:
		return 2
	case RatingLow:
		return 1
	default:
		return 0
	}
}

// Prediction is an ephemeral forecast entry. Never persisted;
// recomputed on each render.
type Prediction struct {
	Kind        PredictionKind `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	GoalID      string         `json:"goalId,omitempty"`
	Value       float64        `json:"value,omitempty"`
	Confidence  Rating         `json:"confidence"`
	Priority    Rating         `json:"priority"`
}
