package learner

import "testing"

func TestDelta_Apply_ImmutableUpdate(t *testing.T) {
	p := validProfile()
	d := Delta{
		OverallAccuracy:     0.9,
		AvgResponseSecs:     20,
		EngagementScore:     0.85,
		PreferredDifficulty: Advanced,
		Record:              record(true, Intermediate),
	}

	next := d.Apply(p)

	if p.OverallAccuracy != 0.75 || p.Recent.Len() != 0 || p.PreferredDifficulty != Intermediate {
		t.Error("Apply mutated the original profile")
	}
	if next.OverallAccuracy != 0.9 {
		t.Errorf("accuracy = %v, want 0.9", next.OverallAccuracy)
	}
	if next.PreferredDifficulty != Advanced {
		t.Errorf("difficulty = %v, want advanced", next.PreferredDifficulty)
	}
	if next.Recent.Len() != 1 {
		t.Errorf("history length = %d, want 1", next.Recent.Len())
	}
	if next.ID != p.ID || next.Name != p.Name {
		t.Error("identity fields must carry over")
	}
}

func TestCompletionDelta_Apply(t *testing.T) {
	p := validProfile()
	next := CompletionDelta{Topic: "algebra", QuizAccuracy: 0.8}.Apply(p)

	if p.QuizzesCompleted != 0 {
		t.Error("Apply mutated the original profile")
	}
	if next.QuizzesCompleted != 1 {
		t.Errorf("QuizzesCompleted = %d, want 1", next.QuizzesCompleted)
	}
	aff, ok := next.AffinityFor("algebra")
	if !ok {
		t.Fatal("no affinity recorded for topic")
	}
	// First result for a topic seeds the affinity at the quiz accuracy.
	if aff != 0.8 {
		t.Errorf("affinity = %v, want 0.8", aff)
	}
}

func TestCompletionDelta_Apply_SmoothsExisting(t *testing.T) {
	p := validProfile()
	p.TopicAffinity = map[string]float64{"algebra": 0.5}

	next := CompletionDelta{Topic: "algebra", QuizAccuracy: 1.0}.Apply(p)

	aff, _ := next.AffinityFor("algebra")
	if aff <= 0.5 || aff >= 1.0 {
		t.Errorf("affinity = %v, want strictly between prior 0.5 and outcome 1.0", aff)
	}
	if got := p.TopicAffinity["algebra"]; got != 0.5 {
		t.Error("Apply mutated the original affinity map")
	}
}

func TestCompletionDelta_Apply_Bounds(t *testing.T) {
	p := validProfile()
	p.TopicAffinity = map[string]float64{"algebra": 1.0}
	next := CompletionDelta{Topic: "algebra", QuizAccuracy: 1.0}.Apply(p)
	if aff, _ := next.AffinityFor("algebra"); aff > 1.0 {
		t.Errorf("affinity = %v, exceeds 1.0", aff)
	}
}
