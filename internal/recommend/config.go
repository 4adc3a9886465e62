package recommend

// Weights controls how the scoring components combine. They must sum
// to 1.0 so the final score stays in [0,1] without rescaling.
type Weights struct {
	// DifficultyMatch rewards quizzes at or near the preferred level.
	DifficultyMatch float64

	// PerformanceFit rewards quizzes whose challenge matches the
	// learner's current accuracy.
	PerformanceFit float64

	// TopicAffinity rewards topics the learner has done well in.
	// Neutral (0.5) when the profile has no history for the topic.
	TopicAffinity float64
}

// DefaultWeights returns the standard component mix: preference first,
// then readiness, then topic familiarity.
func DefaultWeights() Weights {
	return Weights{
		DifficultyMatch: 0.5,
		PerformanceFit:  0.3,
		TopicAffinity:   0.2,
	}
}

// neutralScore is the fallback component value when a signal is missing
// or unrecognized on either side of the comparison.
const neutralScore = 0.5

// adjacentCredit is the difficulty-match score for a quiz one ordinal
// step away from the preferred level.
const adjacentCredit = 0.5
