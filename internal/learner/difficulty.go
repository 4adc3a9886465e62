package learner

import "fmt"

// Difficulty is the ordinal difficulty scale shared by learner preferences
// and quiz content: beginner < intermediate < advanced.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// ParseDifficulty converts a difficulty name to its ordinal value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// String returns the canonical lowercase name.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of the defined levels.
func (d Difficulty) Valid() bool {
	return d >= Beginner && d <= Advanced
}

// Adjacent reports whether d and other differ by exactly one ordinal step.
func (d Difficulty) Adjacent(other Difficulty) bool {
	diff := int(d) - int(other)
	return diff == 1 || diff == -1
}

// Harder returns the next level up, saturating at Advanced.
func (d Difficulty) Harder() Difficulty {
	if d >= Advanced {
		return Advanced
	}
	return d + 1
}

// Easier returns the next level down, saturating at Beginner.
func (d Difficulty) Easier() Difficulty {
	if d <= Beginner {
		return Beginner
	}
	return d - 1
}
