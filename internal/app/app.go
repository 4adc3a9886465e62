// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/router"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screens/dashboard"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	state  *appstate.State
	router *router.Router
	width  int
	height int
}

// newModel creates the root model with the dashboard as home screen.
func newModel(state *appstate.State) Model {
	return Model{
		state:  state,
		router: router.New(dashboard.New(state)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.state.Profile
	header := layout.RenderHeader(title, p.OverallAccuracy, p.EngagementScore, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI over the given session state.
func Run(state *appstate.State) error {
	program := tea.NewProgram(newModel(state))
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running program:", err)
		return err
	}
	return nil
}
