// Package catalog holds the quiz content model and the in-memory catalog
// provider that seeds it from embedded content files.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Question is one assessable item within a quiz.
type Question struct {
	// ID uniquely identifies the question within the catalog.
	ID string

	// Content is the prompt text shown to the learner.
	Content string

	// Options, when present, make this a multiple-choice question.
	// Empty options mean a free-text answer.
	Options []string

	// CorrectAnswer is the expected answer. For multiple choice it must
	// match one of Options.
	CorrectAnswer string

	// Hints are scaffolding hints in reveal order. May be empty.
	Hints []string
}

// FreeText reports whether the question takes a typed answer.
func (q Question) FreeText() bool {
	return len(q.Options) == 0
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question: missing id")
	}
	if strings.TrimSpace(q.Content) == "" {
		return fmt.Errorf("question %s: missing content", q.ID)
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return fmt.Errorf("question %s: missing correct answer", q.ID)
	}
	if len(q.Options) > 0 {
		found := false
		for _, opt := range q.Options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %s: correct answer %q is not among the options", q.ID, q.CorrectAnswer)
		}
	}
	return nil
}

// Quiz is a named assessment unit: an ordered, non-empty sequence of
// questions plus the metadata the recommender scores against.
type Quiz struct {
	Title            string
	Subject          string
	Topic            string
	Difficulty       learner.Difficulty
	EstimatedMinutes int
	Questions        []Question
}

// SecondsPerQuestion returns the pacing reference for this quiz: the
// estimated completion time spread evenly across its questions.
func (z Quiz) SecondsPerQuestion() float64 {
	if len(z.Questions) == 0 {
		return 0
	}
	return float64(z.EstimatedMinutes) * 60 / float64(len(z.Questions))
}

// Validate checks the quiz invariants, including every question.
func (z Quiz) Validate() error {
	if strings.TrimSpace(z.Title) == "" {
		return fmt.Errorf("quiz: missing title")
	}
	if !z.Difficulty.Valid() {
		return fmt.Errorf("quiz %q: invalid difficulty %d", z.Title, int(z.Difficulty))
	}
	if z.EstimatedMinutes <= 0 {
		return fmt.Errorf("quiz %q: estimated time must be positive, got %d", z.Title, z.EstimatedMinutes)
	}
	if len(z.Questions) == 0 {
		return fmt.Errorf("quiz %q: no questions", z.Title)
	}
	for _, q := range z.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quiz %q: %w", z.Title, err)
		}
	}
	return nil
}
