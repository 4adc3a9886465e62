package catalog

// Provider supplies the set of candidate quizzes for recommendation.
// Implementations must be read-only and deterministic within a session.
type Provider interface {
	GetAllQuizzes() []Quiz
}

// StaticProvider is an in-memory Provider over a fixed quiz list.
type StaticProvider struct {
	quizzes []Quiz
}

// NewStaticProvider wraps a quiz list in a Provider.
func NewStaticProvider(quizzes []Quiz) *StaticProvider {
	return &StaticProvider{quizzes: quizzes}
}

// GetAllQuizzes returns a copy of the quiz list so callers cannot
// reorder or mutate the catalog.
func (p *StaticProvider) GetAllQuizzes() []Quiz {
	out := make([]Quiz, len(p.quizzes))
	copy(out, p.quizzes)
	return out
}
