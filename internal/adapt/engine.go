// Package adapt turns a single answer event into calibrated feedback and
// a recommended profile update. The engine holds no state between calls;
// the caller applies (or discards) the returned delta.
package adapt

import (
	"fmt"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Engine evaluates answer events against a learner profile.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given config.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalized()}
}

// NewDefault creates an Engine with DefaultConfig.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

// WithPacing returns a copy of the engine whose pacing reference is the
// given expected seconds per question. Used when the content carries its
// own estimate (quiz estimated time spread over its questions).
func (e *Engine) WithPacing(expectedSecs float64) *Engine {
	cfg := e.cfg
	if expectedSecs > 0 {
		cfg.ExpectedResponseSecs = expectedSecs
	}
	return &Engine{cfg: cfg}
}

// Evaluate produces feedback and a profile-update recommendation for one
// answered question. hintShown tells the engine whether the learner has
// already seen a hint for this question, so feedback never repeats one.
// The profile is read, never written; the caller applies the delta.
func (e *Engine) Evaluate(p learner.Profile, q catalog.Question, correct bool, responseSecs float64, hintShown bool) (Feedback, learner.Delta, error) {
	if responseSecs < 0 {
		return Feedback{}, learner.Delta{}, fmt.Errorf("evaluate: response time must be >= 0, got %.3f", responseSecs)
	}
	if err := p.Validate(); err != nil {
		return Feedback{}, learner.Delta{}, fmt.Errorf("evaluate: %w", err)
	}
	if err := q.Validate(); err != nil {
		return Feedback{}, learner.Delta{}, fmt.Errorf("evaluate: %w", err)
	}

	pace := classifyPace(responseSecs, p.AvgResponseSecs, e.cfg)

	fb := Feedback{Correct: correct}
	if correct {
		fb.Message = correctMessage(pace)
	} else {
		fb.Message = incorrectMessage(p.LearningStyle)
		if !hintShown && len(q.Hints) > 0 {
			fb.Hint = q.Hints[0]
		}
	}

	delta := e.buildDelta(p, correct, responseSecs)
	return fb, delta, nil
}

// buildDelta computes the recommended profile update for the event.
func (e *Engine) buildDelta(p learner.Profile, correct bool, responseSecs float64) learner.Delta {
	cfg := e.cfg

	outcome := 0.0
	if correct {
		outcome = 1.0
	}

	// Exponential smoothing keeps both estimates inside their prior
	// range: the new value is a convex mix of old estimate and outcome.
	accuracy := (1-cfg.AccuracySmoothing)*p.OverallAccuracy + cfg.AccuracySmoothing*outcome
	avgSecs := (1-cfg.ResponseSmoothing)*p.AvgResponseSecs + cfg.ResponseSmoothing*responseSecs

	delta := learner.Delta{
		OverallAccuracy:     clamp01(accuracy),
		AvgResponseSecs:     avgSecs,
		EngagementScore:     e.nudgeEngagement(p.EngagementScore, correct, responseSecs),
		PreferredDifficulty: e.nextDifficulty(p, correct),
		Record: learner.AnswerRecord{
			Correct:      correct,
			ResponseSecs: responseSecs,
			Difficulty:   p.PreferredDifficulty,
		},
	}
	return delta
}

// nudgeEngagement moves the engagement score based on pacing: brisk
// correct answers raise it, dragging interactions lower it, everything
// else holds. Clamped to [0,1].
func (e *Engine) nudgeEngagement(current float64, correct bool, responseSecs float64) float64 {
	cfg := e.cfg
	ratio := responseSecs / cfg.ExpectedResponseSecs

	switch {
	case ratio >= cfg.SlowRatio:
		current -= cfg.EngagementStep
	case correct && ratio <= 1.0:
		current += cfg.EngagementStep
	}
	return clamp01(current)
}

// nextDifficulty applies the streak-gated level transition. The streak
// counts the current event plus consecutive same-outcome answers at the
// current level from the recent window; a run meeting the threshold
// escalates (on correct) or de-escalates (on incorrect) by one level.
func (e *Engine) nextDifficulty(p learner.Profile, correct bool) learner.Difficulty {
	level := p.PreferredDifficulty
	streak := p.Recent.Streak(correct, level) + 1
	if streak < e.cfg.StreakThreshold {
		return level
	}
	if correct {
		return level.Harder()
	}
	return level.Easier()
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
