package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only captures the
// learner's selection; grading lives in the adaptation engine, and the
// result is fed back with Reveal for coloring.
type MultiChoice struct {
	Prompt       string
	Options      []string
	Selected     int
	Submitted    bool
	ChosenIndex  int
	CorrectIndex int // set by Reveal after grading, -1 before
}

// NewMultiChoice creates a new multiple-choice selector.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:       prompt,
		Options:      options,
		Selected:     0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Value returns the chosen option text, or "" before submission.
func (m MultiChoice) Value() string {
	if m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// Reveal records the correct option index for result coloring.
func (m *MultiChoice) Reveal(correctIndex int) {
	m.CorrectIndex = correctIndex
}

// View renders the selector. After Reveal, the correct option shows
// green and a wrong pick shows red.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.CorrectIndex >= 0 && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.CorrectIndex >= 0 && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.CorrectIndex >= 0:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
