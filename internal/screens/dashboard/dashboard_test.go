package dashboard

import (
	"testing"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

func quizAt(title string, d learner.Difficulty) catalog.Quiz {
	return catalog.Quiz{
		Title:            title,
		Subject:          "math",
		Topic:            "arithmetic",
		Difficulty:       d,
		EstimatedMinutes: 5,
		Questions: []catalog.Question{
			{ID: title + "-q1", Content: "2 + 2?", CorrectAnswer: "4"},
		},
	}
}

func testState() *appstate.State {
	profile := learner.Profile{
		ID:                  "student-1",
		Name:                "Demo Student",
		GradeLevel:          10,
		LearningStyle:       learner.StyleVisual,
		PreferredDifficulty: learner.Beginner,
		OverallAccuracy:     0.2,
		AvgResponseSecs:     30,
		EngagementScore:     0.5,
		Recent:              learner.NewHistory(),
	}
	provider := catalog.NewStaticProvider([]catalog.Quiz{
		quizAt("Easy Quiz", learner.Beginner),
		quizAt("Hard Quiz", learner.Advanced),
	})
	return appstate.New(profile, provider)
}

func TestDashboard_RecommendationsOnCreate(t *testing.T) {
	d := New(testState())
	if len(d.recs) != 2 {
		t.Fatalf("recs = %d, want 2", len(d.recs))
	}
	if d.recs[0].Quiz.Title != "Easy Quiz" {
		t.Errorf("top rec = %q, want Easy Quiz for a beginner profile", d.recs[0].Quiz.Title)
	}
}

func TestDashboard_InitRefreshesRecommendations(t *testing.T) {
	state := testState()
	d := New(state)

	// The profile moves while a quiz screen covers the dashboard.
	state.Profile.PreferredDifficulty = learner.Advanced
	state.Profile.OverallAccuracy = 0.9

	d.Init()
	if len(d.recs) != 2 {
		t.Fatalf("recs = %d, want 2", len(d.recs))
	}
	if d.recs[0].Quiz.Title != "Hard Quiz" {
		t.Errorf("top rec after re-activation = %q, want Hard Quiz", d.recs[0].Quiz.Title)
	}
}
