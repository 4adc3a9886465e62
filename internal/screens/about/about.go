// Package about is the static description screen.
package about

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// About is the static about screen.
type About struct{}

var _ screen.Screen = (*About)(nil)

// New creates the about screen.
func New() *About {
	return &About{}
}

func (a *About) Init() tea.Cmd {
	return nil
}

func (a *About) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *About) Title() string {
	return "About"
}

const aboutText = `Learnly adapts quiz content to each learner.

It tracks performance and preference signals on a learner profile and
uses two decision components to personalize every interaction:

  Content Recommender    ranks the quiz catalog by fit to your profile,
                         weighing difficulty preference, readiness, and
                         topic familiarity.

  Adaptation Engine      turns every answer into calibrated feedback
                         and an update to your accuracy, pacing, and
                         engagement estimates. Sustained streaks move
                         your working difficulty up or down one level.

Feedback never reveals answers; it nudges with hints, phrased for your
learning style. All state lives in this session — nothing is stored.`

func (a *About) View(width, height int) string {
	title := theme.Title.Render("About Learnly") + "\n\n"
	body := theme.Body.Render(aboutText)

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(title + body)
}
