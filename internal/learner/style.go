package learner

import "fmt"

// LearningStyle is the closed set of learning-style preferences tracked
// on a profile. Feedback wording keys off this value.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// AllStyles returns the learning styles in display order.
func AllStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading}
}

// ParseLearningStyle converts a style name to its enum value.
func ParseLearningStyle(s string) (LearningStyle, error) {
	switch LearningStyle(s) {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading:
		return LearningStyle(s), nil
	}
	return "", fmt.Errorf("unknown learning style %q", s)
}

// Valid reports whether the style is one of the defined values.
func (s LearningStyle) Valid() bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading:
		return true
	}
	return false
}
