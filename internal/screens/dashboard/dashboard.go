// Package dashboard is the home screen: profile metric cards, top quiz
// recommendations, and navigation into the other screens.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/recommend"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/router"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screens/about"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screens/analytics"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screens/quizrun"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/components"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// topRecommendations is how many quizzes the dashboard surfaces.
const topRecommendations = 3

// Dashboard is the home screen.
type Dashboard struct {
	state *appstate.State
	menu  components.Menu
	recs  []recommend.Recommendation
	err   error
}

var _ screen.Screen = (*Dashboard)(nil)

// New creates the dashboard, computing fresh recommendations.
func New(state *appstate.State) *Dashboard {
	d := &Dashboard{state: state}
	d.refresh()

	items := []components.MenuItem{
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizrun.NewPicker(state)}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analytics.New(state)}
			}
		}},
		{Label: "ABOUT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	d.menu = components.NewMenu(items)
	return d
}

// refresh recomputes recommendations against the current profile.
func (d *Dashboard) refresh() {
	quizzes := d.state.Provider.GetAllQuizzes()
	recs, err := d.state.Recommender.Recommend(d.state.Profile, quizzes, topRecommendations)
	d.recs, d.err = recs, err
}

func (d *Dashboard) Init() tea.Cmd {
	// Recommendations go stale while a quiz is being taken; recompute
	// whenever the dashboard becomes active again.
	d.refresh()
	return nil
}

func (d *Dashboard) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *Dashboard) Title() string {
	return "Dashboard"
}

func (d *Dashboard) View(width, height int) string {
	p := d.state.Profile

	cards := components.MetricRow(
		components.MetricCard{Label: "Accuracy", Value: fmt.Sprintf("%.1f%%", p.OverallAccuracy*100)},
		components.MetricCard{Label: "Engagement", Value: fmt.Sprintf("%.1f%%", p.EngagementScore*100)},
		components.MetricCard{Label: "Avg Response", Value: fmt.Sprintf("%.1fs", p.AvgResponseSecs)},
		components.MetricCard{Label: "Difficulty", Value: p.PreferredDifficulty.String()},
		components.MetricCard{Label: "Quizzes Done", Value: fmt.Sprintf("%d", p.QuizzesCompleted)},
	)

	greeting := theme.Title.Render(fmt.Sprintf("Welcome back, %s", p.Name)) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Grade %d · %s learner", p.GradeLevel, p.LearningStyle))

	var recSection strings.Builder
	recSection.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recommended for you") + "\n")
	if d.err != nil {
		recSection.WriteString(theme.Incorrect.Render("recommendations unavailable: "+d.err.Error()) + "\n")
	} else if len(d.recs) == 0 {
		recSection.WriteString(theme.Subtitle.Render("No quizzes available right now.") + "\n")
	}
	for i, rec := range d.recs {
		line := fmt.Sprintf("%d. %s  ·  %s / %s  ·  %s  ·  %d min",
			i+1, rec.Quiz.Title, rec.Quiz.Subject, rec.Quiz.Topic,
			rec.Quiz.Difficulty, rec.Quiz.EstimatedMinutes)
		score := theme.MetricValue.Render(fmt.Sprintf("  match %.0f%%", rec.Score*100))
		recSection.WriteString(theme.Body.Render(line) + score + "\n")
	}

	content := greeting + "\n\n" + cards + "\n\n" + recSection.String() + "\n" + d.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(content)
}
