// Package quizrun is the quiz-taking flow: a picker over the catalog,
// the question/feedback loop, and the completion summary.
package quizrun

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/router"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/components"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// Picker lets the learner choose a quiz from the catalog.
type Picker struct {
	state *appstate.State
	menu  components.Menu
	empty bool
}

var _ screen.Screen = (*Picker)(nil)

// NewPicker creates the quiz picker over the full catalog.
func NewPicker(state *appstate.State) *Picker {
	quizzes := state.Provider.GetAllQuizzes()

	items := make([]components.MenuItem, 0, len(quizzes))
	for _, quiz := range quizzes {
		quiz := quiz
		items = append(items, components.MenuItem{
			Label: quiz.Title,
			Detail: fmt.Sprintf("%s / %s · %s · %d questions · %d min",
				quiz.Subject, quiz.Topic, quiz.Difficulty,
				len(quiz.Questions), quiz.EstimatedMinutes),
			Action: func() tea.Cmd {
				return startQuiz(state, quiz)
			},
		})
	}

	return &Picker{
		state: state,
		menu:  components.NewMenu(items),
		empty: len(quizzes) == 0,
	}
}

func startQuiz(state *appstate.State, quiz catalog.Quiz) tea.Cmd {
	return func() tea.Msg {
		runner, err := NewRunner(state, quiz)
		if err != nil {
			return router.PopScreenMsg{}
		}
		return router.ReplaceScreenMsg{Screen: runner}
	}
}

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *Picker) Title() string {
	return "Take a Quiz"
}

func (p *Picker) View(width, height int) string {
	if p.empty {
		return lipgloss.NewStyle().
			Width(width).
			Padding(2, 4).
			Render(theme.Subtitle.Render("No quizzes available at the moment."))
	}

	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Select a quiz") + "\n\n"
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(header + p.menu.View())
}
