package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/layout"
)

// Screen is one full-frame view in the learner UI: dashboard, quiz flow,
// analytics, about. The router keeps a stack of these and the app model
// renders the active one between the shared header and footer.
type Screen interface {
	// Init runs when the screen becomes active, both on first push and
	// again when a pop reveals it. Screens refresh stale state here.
	Init() tea.Cmd

	// Update handles one message and returns the resulting screen plus
	// any follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body for the given content area, without
	// the surrounding frame.
	View(width, height int) string

	// Title names the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen swap the default footer key hints for
// its own, e.g. the quiz flow changing hints per phase.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
