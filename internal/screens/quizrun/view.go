package quizrun

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/session"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/components"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/theme"
)

func (r *Runner) View(width, height int) string {
	if r.summary != nil {
		return r.viewSummary(width)
	}
	if r.err != nil {
		return lipgloss.NewStyle().Padding(2, 4).Render(
			theme.Incorrect.Render("Something went wrong: " + r.err.Error()))
	}
	return r.viewQuestion(width)
}

func (r *Runner) viewQuestion(width int) string {
	q, ok := r.sess.CurrentQuestion()
	if !ok {
		return ""
	}

	progress := components.NewProgressBar(
		r.progressLabel(),
		float64(r.sess.Index)/float64(len(r.sess.Quiz.Questions)),
		false,
		width-12,
	).View()

	var body string
	if r.input.free {
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Content) +
			"\n\n" + r.input.text.View()
	} else {
		body = r.input.choice.View()
	}

	out := progress + "\n\n" + body

	if r.hint != "" {
		out += "\n" + theme.Hint.Render("Hint: "+r.hint)
	}

	if r.sess.Phase == session.PhaseFeedback {
		out += "\n\n" + r.viewFeedback(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(out)
}

func (r *Runner) viewFeedback(width int) string {
	var mark string
	if r.feedback.Correct {
		mark = theme.Correct.Render("✓ Correct")
	} else {
		mark = theme.Incorrect.Render("✗ Incorrect")
	}

	msg := theme.Body.Render(r.feedback.Message)
	out := mark + "\n" + msg
	if r.feedback.Hint != "" {
		out += "\n" + theme.Hint.Render("Hint: "+r.feedback.Hint)
	}

	return theme.Card.Width(width - 12).Render(out)
}

func (r *Runner) viewSummary(width int) string {
	sum := *r.summary

	title := theme.Title.Render("Quiz Complete!") + "\n\n"
	stats := components.MetricRow(
		components.MetricCard{Label: "Accuracy", Value: fmt.Sprintf("%.0f%%", sum.Accuracy*100)},
		components.MetricCard{Label: "Correct", Value: fmt.Sprintf("%d/%d", sum.Correct, sum.Answered)},
		components.MetricCard{Label: "Hints Used", Value: fmt.Sprintf("%d", sum.HintsUsed)},
		components.MetricCard{Label: "Time", Value: sum.Duration.Round(time.Second).String()},
	)

	next := theme.Subtitle.Render(fmt.Sprintf("Working difficulty is now: %s", sum.DifficultyAt))

	return lipgloss.NewStyle().
		Width(width).
		Padding(2, 4).
		Render(title + stats + "\n\n" + next)
}
