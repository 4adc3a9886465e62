package adapt

import (
	"testing"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
)

func freeTextQuestion() catalog.Question {
	return catalog.Question{
		ID:            "geo-1",
		Content:       "What is the capital of France?",
		CorrectAnswer: "Paris",
	}
}

func choiceQuestion() catalog.Question {
	return catalog.Question{
		ID:            "sci-1",
		Content:       "Which planet is known as the Red Planet?",
		Options:       []string{"Earth", "Venus", "Mars", "Jupiter"},
		CorrectAnswer: "Mars",
	}
}

func TestCheckAnswer_FreeText(t *testing.T) {
	tests := []struct {
		given string
		want  bool
	}{
		{"Paris", true},
		{"paris", true},
		{"  PARIS  ", true},
		{"Lyon", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.given, freeTextQuestion()); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.given, got, tt.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	tests := []struct {
		given string
		want  bool
	}{
		{"Mars", true},
		{"mars", true},
		{"3", true},  // 1-based index of Mars
		{"1", false}, // index of Earth
		{"Venus", false},
		{"5", false}, // out of range, no option named "5"
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.given, choiceQuestion()); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.given, got, tt.want)
		}
	}
}

func TestCheckAnswer_NumericOptions(t *testing.T) {
	q := catalog.Question{
		ID:            "math-1",
		Content:       "What is 1 + 2?",
		Options:       []string{"2", "3", "4"},
		CorrectAnswer: "3",
	}
	tests := []struct {
		given string
		want  bool
	}{
		{"3", true}, // literal value, even though 3 indexes the option "4"
		{"2", true}, // 1-based index of the option "3"
		{"4", false},
		{"1", false}, // indexes "2", and "1" is not the answer text
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.given, q); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.given, got, tt.want)
		}
	}
}
