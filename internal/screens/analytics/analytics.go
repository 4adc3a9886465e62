// Package analytics shows per-session results and the adaptation trail
// for the current run.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/components"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// Analytics is the learning-analytics screen.
type Analytics struct {
	state *appstate.State
}

var _ screen.Screen = (*Analytics)(nil)

// New creates the analytics screen.
func New(state *appstate.State) *Analytics {
	return &Analytics{state: state}
}

func (a *Analytics) Init() tea.Cmd {
	return nil
}

func (a *Analytics) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *Analytics) Title() string {
	return "Analytics"
}

func (a *Analytics) View(width, height int) string {
	p := a.state.Profile
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Performance") + "\n\n")
	b.WriteString(components.NewProgressBar("Accuracy  ", p.OverallAccuracy, true, width-16).View() + "\n")
	b.WriteString(components.NewProgressBar("Engagement", p.EngagementScore, true, width-16).View() + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Sessions this run") + "\n")
	if len(a.state.Summaries) == 0 {
		b.WriteString(theme.Subtitle.Render("No quizzes completed yet. Take one from the dashboard.") + "\n")
	}
	for _, sum := range a.state.Summaries {
		line := fmt.Sprintf("%-28s  %2d/%-2d correct  %3.0f%%  %d hints  %s",
			sum.QuizTitle, sum.Correct, sum.Answered, sum.Accuracy*100,
			sum.HintsUsed, sum.Duration.Round(time.Second))
		b.WriteString(theme.Body.Render(line) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Difficulty adaptation") + "\n")
	if len(a.state.DifficultyTrail) == 0 {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Holding steady at %s.", p.PreferredDifficulty)) + "\n")
	}
	for _, change := range a.state.DifficultyTrail {
		arrow := "↑"
		style := theme.Correct
		if change.To < change.From {
			arrow = "↓"
			style = theme.Incorrect
		}
		line := fmt.Sprintf("%s  %s %s → %s",
			change.At.Format("15:04:05"), arrow, change.From, change.To)
		b.WriteString(style.Render(line) + "\n")
	}

	topics := p.TopicAffinity
	if len(topics) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Topic mastery") + "\n")
		for _, topic := range sortedTopics(topics) {
			b.WriteString(components.NewProgressBar(fmt.Sprintf("%-14s", topic), topics[topic], true, width-20).View() + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(b.String())
}

func sortedTopics(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
