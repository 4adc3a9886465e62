package session

import (
	"time"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Summary is the roll-up of a finished (or abandoned) session.
type Summary struct {
	QuizTitle    string
	Topic        string
	Answered     int
	Correct      int
	Accuracy     float64
	HintsUsed    int
	Duration     time.Duration
	DifficultyAt learner.Difficulty
}

// Summarize rolls up the session results. Accuracy is over answered
// questions, zero when nothing was answered.
func (s *QuizSession) Summarize(now time.Time, difficulty learner.Difficulty) Summary {
	correct := 0
	for _, a := range s.Answers {
		if a.Correct {
			correct++
		}
	}
	hints := 0
	for _, shown := range s.HintShown {
		if shown {
			hints++
		}
	}

	sum := Summary{
		QuizTitle:    s.Quiz.Title,
		Topic:        s.Quiz.Topic,
		Answered:     len(s.Answers),
		Correct:      correct,
		HintsUsed:    hints,
		Duration:     now.Sub(s.StartedAt),
		DifficultyAt: difficulty,
	}
	if sum.Answered > 0 {
		sum.Accuracy = float64(correct) / float64(sum.Answered)
	}
	return sum
}

// CompletionDelta builds the profile update for finishing this quiz.
// Only meaningful once the session is complete.
func (s *QuizSession) CompletionDelta(now time.Time, difficulty learner.Difficulty) learner.CompletionDelta {
	sum := s.Summarize(now, difficulty)
	return learner.CompletionDelta{
		Topic:        s.Quiz.Topic,
		QuizAccuracy: sum.Accuracy,
	}
}
