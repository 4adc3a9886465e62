package learner

import (
	"fmt"

	"github.com/google/uuid"
)

// Seed values for a demo profile: a learner with some history behind
// them, so recommendations and pacing comparisons have signal to work
// with from the first interaction.
const (
	seedAccuracy     = 0.75
	seedResponseSecs = 25.0
	seedEngagement   = 0.80
)

// NewDemoProfile builds a well-formed profile for a new session. An empty
// id gets a generated one. Style and difficulty are parsed from their
// string names so callers can pass user input straight through.
func NewDemoProfile(id, name string, gradeLevel int, style, difficulty string) (Profile, error) {
	if id == "" {
		id = uuid.NewString()
	}

	ls, err := ParseLearningStyle(style)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	diff, err := ParseDifficulty(difficulty)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}

	p := Profile{
		ID:                  id,
		Name:                name,
		GradeLevel:          gradeLevel,
		LearningStyle:       ls,
		PreferredDifficulty: diff,
		OverallAccuracy:     seedAccuracy,
		AvgResponseSecs:     seedResponseSecs,
		EngagementScore:     seedEngagement,
		Recent:              NewHistory(),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}
