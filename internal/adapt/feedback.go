package adapt

import (
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

// Feedback is the engine's answer to one answer event: a message for the
// learner and, for misses, an optional hint reference. Never stored.
type Feedback struct {
	// Message is the feedback text shown to the learner.
	Message string

	// Hint is the first unseen hint for the question, set only on an
	// incorrect answer when the caller reports no hint shown yet.
	Hint string

	// Correct mirrors the evaluated outcome for display convenience.
	Correct bool
}

// Pace classifies a response time against the learner's own average.
type Pace int

const (
	PaceSteady Pace = iota
	PaceFast
	PaceSlow
)

// classifyPace compares the response to the learner's average response
// time. With no average yet (fresh profile), everything is steady.
func classifyPace(responseSecs, avgSecs float64, cfg Config) Pace {
	if avgSecs <= 0 {
		return PaceSteady
	}
	ratio := responseSecs / avgSecs
	switch {
	case ratio <= cfg.FastRatio:
		return PaceFast
	case ratio >= cfg.SlowRatio:
		return PaceSlow
	default:
		return PaceSteady
	}
}

// correctMessage picks the affirmation for a correct answer. Fast
// answers get a mastery note on top of the plain confirmation.
func correctMessage(pace Pace) string {
	if pace == PaceFast {
		return "Correct, and quick! You are answering faster than your usual pace; this material may be ready for a harder challenge."
	}
	return "Correct! Nice steady work."
}

// incorrectMessage picks the conceptual nudge for a miss. The correct
// answer is never named; the nudge is tuned to the learning style.
func incorrectMessage(style learner.LearningStyle) string {
	switch style {
	case learner.StyleVisual:
		return "Not quite. Try sketching the problem out; a quick diagram often makes the relationship visible."
	case learner.StyleAuditory:
		return "Not quite. Try talking through the problem out loud, step by step, as if explaining it to someone."
	case learner.StyleKinesthetic:
		return "Not quite. Try working it with your hands: count it out, write each step, or model it with objects."
	case learner.StyleReading:
		return "Not quite. Re-read the question slowly and note what each part is telling you before answering again."
	default:
		return "Not quite. Slow down and break the problem into smaller steps."
	}
}
