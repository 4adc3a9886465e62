// Package appstate holds the presentation layer's session state: the
// live profile, the content catalog, the decision components, and the
// results of finished quizzes. The core packages never see this type;
// screens own it and decide when to commit deltas.
package appstate

import (
	"time"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/adapt"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/recommend"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/session"
)

// DifficultyChange records one difficulty transition for the analytics
// screen.
type DifficultyChange struct {
	At   time.Time
	From learner.Difficulty
	To   learner.Difficulty
}

// State is the single per-run state bag shared by the screens.
type State struct {
	Profile     learner.Profile
	Provider    catalog.Provider
	Recommender *recommend.Recommender
	Engine      *adapt.Engine

	// Summaries collects finished-quiz roll-ups, oldest first.
	Summaries []session.Summary

	// DifficultyTrail records streak-triggered level changes.
	DifficultyTrail []DifficultyChange
}

// New wires up the state bag with default decision components.
func New(profile learner.Profile, provider catalog.Provider) *State {
	return &State{
		Profile:     profile,
		Provider:    provider,
		Recommender: recommend.NewDefault(),
		Engine:      adapt.NewDefault(),
	}
}

// ApplyDelta commits an answer delta to the profile, recording any
// difficulty transition for analytics.
func (s *State) ApplyDelta(d learner.Delta, now time.Time) {
	before := s.Profile.PreferredDifficulty
	s.Profile = d.Apply(s.Profile)
	if s.Profile.PreferredDifficulty != before {
		s.DifficultyTrail = append(s.DifficultyTrail, DifficultyChange{
			At:   now,
			From: before,
			To:   s.Profile.PreferredDifficulty,
		})
	}
}

// FinishQuiz commits the quiz-completion delta and stores the summary.
func (s *State) FinishQuiz(sess *session.QuizSession, now time.Time) session.Summary {
	sum := sess.Summarize(now, s.Profile.PreferredDifficulty)
	s.Profile = sess.CompletionDelta(now, s.Profile.PreferredDifficulty).Apply(s.Profile)
	s.Summaries = append(s.Summaries, sum)
	return sum
}
