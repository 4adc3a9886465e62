// Package learner holds the learner profile data model: performance and
// preference signals, the recent-answer history window, and the immutable
// delta type the adaptation engine returns instead of mutating a profile.
package learner

import "fmt"

// Profile is one learner's accumulated performance and preference state.
// The decision components read it; only a Delta applied by the caller
// ever changes it.
type Profile struct {
	// ID uniquely identifies the learner. Immutable.
	ID string

	// Name is the display name.
	Name string

	// GradeLevel is the learner's school grade (positive).
	GradeLevel int

	// LearningStyle drives feedback wording.
	LearningStyle LearningStyle

	// PreferredDifficulty is the current working difficulty level.
	PreferredDifficulty Difficulty

	// OverallAccuracy is the smoothed fraction of correct answers, in [0,1].
	OverallAccuracy float64

	// AvgResponseSecs is the smoothed response time in seconds.
	AvgResponseSecs float64

	// EngagementScore estimates attention and pacing fit, in [0,1].
	EngagementScore float64

	// QuizzesCompleted counts finished quizzes this session lineage.
	QuizzesCompleted int

	// TopicAffinity maps topic name to a smoothed accuracy on that topic,
	// in [0,1]. Empty until the learner has finished a quiz; recommenders
	// treat a missing topic as neutral.
	TopicAffinity map[string]float64

	// Recent is the rolling answer window used for streak evaluation.
	Recent History
}

// Validate checks the profile invariants, returning an error naming the
// first offending field.
func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile: missing id")
	}
	if p.GradeLevel <= 0 {
		return fmt.Errorf("profile %s: grade level must be positive, got %d", p.ID, p.GradeLevel)
	}
	if !p.LearningStyle.Valid() {
		return fmt.Errorf("profile %s: invalid learning style %q", p.ID, p.LearningStyle)
	}
	if !p.PreferredDifficulty.Valid() {
		return fmt.Errorf("profile %s: invalid preferred difficulty %d", p.ID, int(p.PreferredDifficulty))
	}
	if p.OverallAccuracy < 0 || p.OverallAccuracy > 1 {
		return fmt.Errorf("profile %s: overall accuracy %.3f outside [0,1]", p.ID, p.OverallAccuracy)
	}
	if p.AvgResponseSecs < 0 {
		return fmt.Errorf("profile %s: negative avg response time %.3f", p.ID, p.AvgResponseSecs)
	}
	if p.EngagementScore < 0 || p.EngagementScore > 1 {
		return fmt.Errorf("profile %s: engagement score %.3f outside [0,1]", p.ID, p.EngagementScore)
	}
	if p.QuizzesCompleted < 0 {
		return fmt.Errorf("profile %s: negative quizzes completed %d", p.ID, p.QuizzesCompleted)
	}
	for topic, aff := range p.TopicAffinity {
		if aff < 0 || aff > 1 {
			return fmt.Errorf("profile %s: topic affinity for %q is %.3f, outside [0,1]", p.ID, topic, aff)
		}
	}
	return nil
}

// AffinityFor returns the smoothed affinity for a topic and whether the
// profile has any history for it.
func (p Profile) AffinityFor(topic string) (float64, bool) {
	aff, ok := p.TopicAffinity[topic]
	return aff, ok
}
