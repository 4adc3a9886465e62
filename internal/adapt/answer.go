package adapt

import (
	"strconv"
	"strings"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
)

// CheckAnswer compares the learner's input against the question's
// correct answer.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Comparison is case-insensitive ("paris" matches "Paris")
//   - For multiple choice: matches the option text, or a 1-based
//     option index typed as a number. A numeric entry that misses as an
//     index still counts when it matches the answer text itself, so
//     numeric options stay answerable by their literal value.
func CheckAnswer(given string, q catalog.Question) bool {
	given = strings.TrimSpace(given)
	if given == "" {
		return false
	}

	if !q.FreeText() {
		if idx, err := strconv.Atoi(given); err == nil && idx >= 1 && idx <= len(q.Options) {
			if strings.EqualFold(strings.TrimSpace(q.Options[idx-1]), strings.TrimSpace(q.CorrectAnswer)) {
				return true
			}
		}
	}

	return strings.EqualFold(given, strings.TrimSpace(q.CorrectAnswer))
}
