package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for free-text answers.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

// Init returns the initial focus command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying input. Frozen after submit.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a result marker after submission.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the input and records the grading result.
func (t *TextInput) Submit(correct bool) {
	t.submitted = true
	t.correct = correct
}
