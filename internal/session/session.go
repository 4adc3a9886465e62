// Package session models one quiz-taking session as an explicit,
// caller-owned value. It sequences questions, runs the adaptation engine
// per answer, and collects results; the caller decides when to commit
// profile deltas. No global state.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/adapt"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Phase is where the session currently sits.
type Phase int

const (
	PhaseActive   Phase = iota // A question is awaiting an answer
	PhaseFeedback              // The last answer's feedback is showing
	PhaseComplete              // All questions answered
)

// Answer records one submitted answer within the session.
type Answer struct {
	QuestionID   string
	Given        string
	Correct      bool
	ResponseSecs float64
}

// QuizSession tracks one run through a quiz.
type QuizSession struct {
	// ID identifies this session for display and analytics.
	ID string

	// Quiz is the content being taken.
	Quiz catalog.Quiz

	// Index is the current question position.
	Index int

	// Answers maps question index to the recorded answer.
	Answers map[int]Answer

	// HintShown marks question indexes where the learner saw a hint.
	HintShown map[int]bool

	// StartedAt is when the session began.
	StartedAt time.Time

	// Phase is the current session phase.
	Phase Phase

	engine *adapt.Engine
}

// New starts a session over a validated quiz. The engine's pacing
// reference is derived from the quiz's own time estimate.
func New(quiz catalog.Quiz, engine *adapt.Engine, now time.Time) (*QuizSession, error) {
	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if engine == nil {
		engine = adapt.NewDefault()
	}
	return &QuizSession{
		ID:        uuid.NewString(),
		Quiz:      quiz,
		Answers:   make(map[int]Answer),
		HintShown: make(map[int]bool),
		StartedAt: now,
		Phase:     PhaseActive,
		engine:    engine.WithPacing(quiz.SecondsPerQuestion()),
	}, nil
}

// CurrentQuestion returns the active question, or false when the
// session has run past the last one.
func (s *QuizSession) CurrentQuestion() (catalog.Question, bool) {
	if s.Index >= len(s.Quiz.Questions) {
		return catalog.Question{}, false
	}
	return s.Quiz.Questions[s.Index], true
}

// Submit evaluates the learner's answer to the current question. It
// records the answer, moves the session to the feedback phase, and
// returns the engine's feedback plus the profile delta for the caller
// to apply.
func (s *QuizSession) Submit(p learner.Profile, given string, responseSecs float64) (adapt.Feedback, learner.Delta, error) {
	if s.Phase != PhaseActive {
		return adapt.Feedback{}, learner.Delta{}, fmt.Errorf("submit: session not accepting answers")
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return adapt.Feedback{}, learner.Delta{}, fmt.Errorf("submit: no current question")
	}

	correct := adapt.CheckAnswer(given, q)
	fb, delta, err := s.engine.Evaluate(p, q, correct, responseSecs, s.HintShown[s.Index])
	if err != nil {
		return adapt.Feedback{}, learner.Delta{}, err
	}
	if fb.Hint != "" {
		s.HintShown[s.Index] = true
	}

	s.Answers[s.Index] = Answer{
		QuestionID:   q.ID,
		Given:        given,
		Correct:      correct,
		ResponseSecs: responseSecs,
	}
	s.Phase = PhaseFeedback
	return fb, delta, nil
}

// ShowHint returns the first hint for the current question and marks it
// shown. Empty string when the question has no hints.
func (s *QuizSession) ShowHint() string {
	q, ok := s.CurrentQuestion()
	if !ok || len(q.Hints) == 0 {
		return ""
	}
	s.HintShown[s.Index] = true
	return q.Hints[0]
}

// Advance moves past the feedback phase to the next question, or to
// completion after the last one.
func (s *QuizSession) Advance() {
	if s.Phase != PhaseFeedback {
		return
	}
	s.Index++
	if s.Index >= len(s.Quiz.Questions) {
		s.Phase = PhaseComplete
	} else {
		s.Phase = PhaseActive
	}
}

// Completed reports whether every question has been answered.
func (s *QuizSession) Completed() bool {
	return s.Phase == PhaseComplete
}
