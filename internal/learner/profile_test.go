package learner

import (
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		ID:                  "student-1",
		Name:                "Demo Student",
		GradeLevel:          10,
		LearningStyle:       StyleVisual,
		PreferredDifficulty: Intermediate,
		OverallAccuracy:     0.75,
		AvgResponseSecs:     25,
		EngagementScore:     0.8,
		Recent:              NewHistory(),
	}
}

func TestProfile_Validate_OK(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestProfile_Validate_NamesField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantSub string
	}{
		{"missing id", func(p *Profile) { p.ID = "" }, "id"},
		{"zero grade", func(p *Profile) { p.GradeLevel = 0 }, "grade level"},
		{"bad style", func(p *Profile) { p.LearningStyle = "telepathic" }, "learning style"},
		{"bad difficulty", func(p *Profile) { p.PreferredDifficulty = Difficulty(9) }, "difficulty"},
		{"accuracy above 1", func(p *Profile) { p.OverallAccuracy = 1.2 }, "accuracy"},
		{"negative response time", func(p *Profile) { p.AvgResponseSecs = -1 }, "response time"},
		{"engagement below 0", func(p *Profile) { p.EngagementScore = -0.1 }, "engagement"},
		{"negative completions", func(p *Profile) { p.QuizzesCompleted = -1 }, "quizzes completed"},
		{"affinity out of range", func(p *Profile) { p.TopicAffinity = map[string]float64{"algebra": 1.5} }, "affinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range AllDifficulties() {
		got, err := ParseDifficulty(d.String())
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) error: %v", d, err)
		}
		if got != d {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", d, got, d)
		}
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Error("ParseDifficulty(expert) = nil error, want error")
	}
}

func TestDifficulty_Ordinal(t *testing.T) {
	if !Beginner.Adjacent(Intermediate) || Beginner.Adjacent(Advanced) {
		t.Error("adjacency wrong on ordinal scale")
	}
	if Advanced.Harder() != Advanced {
		t.Error("Harder() must saturate at advanced")
	}
	if Beginner.Easier() != Beginner {
		t.Error("Easier() must saturate at beginner")
	}
	if Intermediate.Harder() != Advanced || Intermediate.Easier() != Beginner {
		t.Error("step from intermediate wrong")
	}
}

func TestParseLearningStyle(t *testing.T) {
	for _, s := range AllStyles() {
		got, err := ParseLearningStyle(string(s))
		if err != nil || got != s {
			t.Errorf("ParseLearningStyle(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseLearningStyle("osmosis"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestNewDemoProfile(t *testing.T) {
	p, err := NewDemoProfile("", "Demo", 10, "visual", "intermediate")
	if err != nil {
		t.Fatalf("NewDemoProfile() error: %v", err)
	}
	if p.ID == "" {
		t.Error("empty id not filled")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("demo profile invalid: %v", err)
	}

	if _, err := NewDemoProfile("x", "Demo", 10, "psychic", "intermediate"); err == nil {
		t.Error("expected error for bad style")
	}
	if _, err := NewDemoProfile("x", "Demo", 10, "visual", "impossible"); err == nil {
		t.Error("expected error for bad difficulty")
	}
}
