package components

import (
	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

// MetricCard renders a labeled value in a bordered card, the dashboard's
// building block for profile stats.
type MetricCard struct {
	Label string
	Value string
	Width int
}

// View renders the card.
func (m MetricCard) View() string {
	content := theme.MetricValue.Render(m.Value) + "\n" +
		theme.MetricLabel.Render(m.Label)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(content)
}

// MetricRow lays metric cards side by side.
func MetricRow(cards ...MetricCard) string {
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
