// Package recommend ranks a quiz catalog against a learner profile using
// content-based filtering over difficulty, readiness, and topic signals.
package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Recommendation pairs a quiz with its match score in [0,1]. Produced
// fresh on every request, never stored.
type Recommendation struct {
	Quiz  catalog.Quiz
	Score float64
}

// Recommender scores quizzes against a profile.
type Recommender struct {
	weights Weights
}

// New creates a Recommender with the given weights.
func New(weights Weights) *Recommender {
	return &Recommender{weights: weights}
}

// NewDefault creates a Recommender with DefaultWeights.
func NewDefault() *Recommender {
	return New(DefaultWeights())
}

// Recommend returns the topN best-matching quizzes, descending by score.
// Ties keep catalog order. An empty catalog or topN of zero yields an
// empty result; a negative topN is a validation error. Neither the
// profile nor the catalog is mutated.
func (r *Recommender) Recommend(p learner.Profile, quizzes []catalog.Quiz, topN int) ([]Recommendation, error) {
	if topN < 0 {
		return nil, fmt.Errorf("recommend: top_n must be >= 0, got %d", topN)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	recs := make([]Recommendation, 0, len(quizzes))
	for _, quiz := range quizzes {
		recs = append(recs, Recommendation{Quiz: quiz, Score: r.Score(p, quiz)})
	}

	// Stable keeps catalog order for equal scores.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if topN < len(recs) {
		recs = recs[:topN]
	}
	return recs, nil
}

// Score computes the weighted match score for one quiz, clamped to [0,1].
func (r *Recommender) Score(p learner.Profile, quiz catalog.Quiz) float64 {
	w := r.weights
	score := w.DifficultyMatch*difficultyMatch(p.PreferredDifficulty, quiz.Difficulty) +
		w.PerformanceFit*performanceFit(p.OverallAccuracy, quiz.Difficulty) +
		w.TopicAffinity*topicAffinity(p, quiz.Topic)
	return clamp01(score)
}

// difficultyMatch scores how close the quiz sits to the preferred level:
// exact match 1.0, one step away 0.5, two steps 0.0. Unrecognized levels
// on either side score neutral rather than failing.
func difficultyMatch(preferred, quiz learner.Difficulty) float64 {
	if !preferred.Valid() || !quiz.Valid() {
		return neutralScore
	}
	switch {
	case preferred == quiz:
		return 1.0
	case preferred.Adjacent(quiz):
		return adjacentCredit
	default:
		return 0.0
	}
}

// performanceFit scores learner readiness for the quiz's difficulty.
// Each level has an accuracy band center (beginner 1/6, intermediate 1/2,
// advanced 5/6); fit falls off linearly with the distance between the
// learner's accuracy and that center. Continuous in accuracy, so small
// accuracy changes never cause ranking jumps at ordinal boundaries.
func performanceFit(accuracy float64, quiz learner.Difficulty) float64 {
	if !quiz.Valid() {
		return neutralScore
	}
	center := (float64(quiz) + 0.5) / 3.0
	return clamp01(1.0 - math.Abs(clamp01(accuracy)-center))
}

// topicAffinity returns the learner's smoothed accuracy on the quiz
// topic, or neutral when the profile has no history for it.
func topicAffinity(p learner.Profile, topic string) float64 {
	aff, ok := p.AffinityFor(topic)
	if !ok {
		return neutralScore
	}
	return clamp01(aff)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
