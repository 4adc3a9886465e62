package adapt

import (
	"testing"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

func testProfile() learner.Profile {
	return learner.Profile{
		ID:                  "student-1",
		Name:                "Demo Student",
		GradeLevel:          10,
		LearningStyle:       learner.StyleVisual,
		PreferredDifficulty: learner.Beginner,
		OverallAccuracy:     0.5,
		AvgResponseSecs:     30,
		EngagementScore:     0.5,
		Recent:              learner.NewHistory(),
	}
}

func TestEvaluate_NegativeResponseTime(t *testing.T) {
	_, _, err := NewDefault().Evaluate(testProfile(), freeTextQuestion(), true, -1, false)
	if err == nil {
		t.Error("expected error for negative response time")
	}
}

func TestEvaluate_InvalidProfile(t *testing.T) {
	p := testProfile()
	p.LearningStyle = "osmosis"
	_, _, err := NewDefault().Evaluate(p, freeTextQuestion(), true, 10, false)
	if err == nil {
		t.Error("expected validation error for malformed profile")
	}
}

func TestEvaluate_InvalidQuestion(t *testing.T) {
	q := freeTextQuestion()
	q.CorrectAnswer = ""
	_, _, err := NewDefault().Evaluate(testProfile(), q, true, 10, false)
	if err == nil {
		t.Error("expected validation error for malformed question")
	}
}

func TestEvaluate_AccuracyMonotone(t *testing.T) {
	for _, prior := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := testProfile()
		p.OverallAccuracy = prior

		_, up, err := NewDefault().Evaluate(p, freeTextQuestion(), true, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		if up.OverallAccuracy < prior {
			t.Errorf("correct answer dropped accuracy from %v to %v", prior, up.OverallAccuracy)
		}

		_, down, err := NewDefault().Evaluate(p, freeTextQuestion(), false, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		if down.OverallAccuracy > prior {
			t.Errorf("incorrect answer raised accuracy from %v to %v", prior, down.OverallAccuracy)
		}
	}
}

func TestEvaluate_ConvergesOnStreaks(t *testing.T) {
	engine := NewDefault()

	p := testProfile()
	for i := 0; i < 50; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		p = delta.Apply(p)
	}
	if p.OverallAccuracy < 0.99 || p.OverallAccuracy > 1 {
		t.Errorf("all-correct accuracy = %v, want near 1.0 within bounds", p.OverallAccuracy)
	}

	p = testProfile()
	for i := 0; i < 50; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), false, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		p = delta.Apply(p)
	}
	if p.OverallAccuracy > 0.01 || p.OverallAccuracy < 0 {
		t.Errorf("all-incorrect accuracy = %v, want near 0.0 within bounds", p.OverallAccuracy)
	}
}

func TestEvaluate_BoundsAtExtremes(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		engage   float64
		avgSecs  float64
		respSecs float64
		correct  bool
	}{
		{"all floor, instant", 0, 0, 0, 0, false},
		{"all ceiling, instant", 1, 1, 0, 0, true},
		{"slow at ceiling", 1, 1, 5, 600, true},
		{"fast at floor", 0, 0, 60, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			p.OverallAccuracy = tt.accuracy
			p.EngagementScore = tt.engage
			p.AvgResponseSecs = tt.avgSecs

			_, delta, err := NewDefault().Evaluate(p, freeTextQuestion(), tt.correct, tt.respSecs, false)
			if err != nil {
				t.Fatal(err)
			}
			if delta.OverallAccuracy < 0 || delta.OverallAccuracy > 1 {
				t.Errorf("accuracy %v outside [0,1]", delta.OverallAccuracy)
			}
			if delta.EngagementScore < 0 || delta.EngagementScore > 1 {
				t.Errorf("engagement %v outside [0,1]", delta.EngagementScore)
			}
			if delta.AvgResponseSecs < 0 {
				t.Errorf("avg response time %v negative", delta.AvgResponseSecs)
			}
		})
	}
}

func TestEvaluate_EngagementNudges(t *testing.T) {
	engine := New(Config{ExpectedResponseSecs: 30})

	p := testProfile()
	_, brisk, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if brisk.EngagementScore <= p.EngagementScore {
		t.Errorf("brisk correct answer should raise engagement: %v -> %v", p.EngagementScore, brisk.EngagementScore)
	}

	_, slow, err := engine.Evaluate(p, freeTextQuestion(), true, 90, false)
	if err != nil {
		t.Fatal(err)
	}
	if slow.EngagementScore >= p.EngagementScore {
		t.Errorf("dragging answer should lower engagement: %v -> %v", p.EngagementScore, slow.EngagementScore)
	}
}

// Streak gating: with threshold 3, two correct answers hold the level
// and the third escalates.
func TestEvaluate_DifficultyEscalation(t *testing.T) {
	engine := NewDefault()
	p := testProfile() // beginner

	for i := 0; i < 2; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		if delta.PreferredDifficulty != learner.Beginner {
			t.Fatalf("answer %d moved difficulty to %v before threshold", i+1, delta.PreferredDifficulty)
		}
		p = delta.Apply(p)
	}

	_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if delta.PreferredDifficulty != learner.Intermediate {
		t.Errorf("third consecutive correct = %v, want escalation to intermediate", delta.PreferredDifficulty)
	}
}

func TestEvaluate_DifficultyDeescalation(t *testing.T) {
	engine := NewDefault()
	p := testProfile()
	p.PreferredDifficulty = learner.Intermediate

	for i := 0; i < 2; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), false, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		if delta.PreferredDifficulty != learner.Intermediate {
			t.Fatalf("miss %d moved difficulty before threshold", i+1)
		}
		p = delta.Apply(p)
	}

	_, delta, err := engine.Evaluate(p, freeTextQuestion(), false, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if delta.PreferredDifficulty != learner.Beginner {
		t.Errorf("third consecutive miss = %v, want de-escalation to beginner", delta.PreferredDifficulty)
	}
}

func TestEvaluate_MixedOutcomesHoldDifficulty(t *testing.T) {
	engine := NewDefault()
	p := testProfile()

	outcomes := []bool{true, true, false, true, true, false}
	for i, correct := range outcomes {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), correct, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		if delta.PreferredDifficulty != learner.Beginner {
			t.Fatalf("answer %d moved difficulty without a full streak", i+1)
		}
		p = delta.Apply(p)
	}
}

func TestEvaluate_EscalationSaturatesAtAdvanced(t *testing.T) {
	engine := NewDefault()
	p := testProfile()
	p.PreferredDifficulty = learner.Advanced

	for i := 0; i < 6; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		p = delta.Apply(p)
	}
	if p.PreferredDifficulty != learner.Advanced {
		t.Errorf("difficulty = %v, want to stay at advanced", p.PreferredDifficulty)
	}
}

// After escalation the streak restarts: the answers that earned the
// promotion were at the old level and never count at the new one.
func TestEvaluate_StreakResetsAfterTransition(t *testing.T) {
	engine := NewDefault()
	p := testProfile()

	for i := 0; i < 3; i++ {
		_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
		if err != nil {
			t.Fatal(err)
		}
		p = delta.Apply(p)
	}
	if p.PreferredDifficulty != learner.Intermediate {
		t.Fatalf("setup failed: difficulty = %v", p.PreferredDifficulty)
	}

	_, delta, err := engine.Evaluate(p, freeTextQuestion(), true, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if delta.PreferredDifficulty != learner.Intermediate {
		t.Errorf("first correct at new level escalated immediately to %v", delta.PreferredDifficulty)
	}
}

func TestEvaluate_RecordCarriesEventDifficulty(t *testing.T) {
	p := testProfile()
	p.PreferredDifficulty = learner.Intermediate

	_, delta, err := NewDefault().Evaluate(p, freeTextQuestion(), true, 12.5, false)
	if err != nil {
		t.Fatal(err)
	}
	if delta.Record.Difficulty != learner.Intermediate {
		t.Errorf("record difficulty = %v, want the level at answer time", delta.Record.Difficulty)
	}
	if delta.Record.ResponseSecs != 12.5 || !delta.Record.Correct {
		t.Error("record does not carry the answer event")
	}
}
