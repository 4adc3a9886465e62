package quizrun

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/adapt"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/router"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/screen"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/session"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/components"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/ui/layout"
)

// answerInput is whichever component is collecting the current answer.
type answerInput struct {
	choice components.MultiChoice
	text   components.TextInput
	free   bool
}

// Runner drives one quiz session.
type Runner struct {
	state *appstate.State
	sess  *session.QuizSession

	input         answerInput
	feedback      adapt.Feedback
	hint          string
	questionStart time.Time
	summary       *session.Summary
	err           error
}

var _ screen.Screen = (*Runner)(nil)
var _ screen.KeyHintProvider = (*Runner)(nil)

// NewRunner starts a session over the chosen quiz.
func NewRunner(state *appstate.State, quiz catalog.Quiz) (*Runner, error) {
	sess, err := session.New(quiz, state.Engine, time.Now())
	if err != nil {
		return nil, err
	}
	r := &Runner{state: state, sess: sess}
	r.loadQuestion()
	return r, nil
}

// loadQuestion prepares the input component for the current question.
func (r *Runner) loadQuestion() {
	q, ok := r.sess.CurrentQuestion()
	if !ok {
		return
	}
	r.hint = ""
	r.feedback = adapt.Feedback{}
	r.questionStart = time.Now()

	if q.FreeText() {
		r.input = answerInput{
			text: components.NewTextInput("Type your answer", 64),
			free: true,
		}
	} else {
		r.input = answerInput{
			choice: components.NewMultiChoice(q.Content, q.Options),
		}
	}
}

func (r *Runner) Init() tea.Cmd {
	if r.input.free {
		return r.input.text.Init()
	}
	return nil
}

func (r *Runner) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch r.sess.Phase {
	case session.PhaseActive:
		return r.updateActive(msg)
	case session.PhaseFeedback:
		return r.updateFeedback(msg)
	default:
		return r.updateComplete(msg)
	}
}

func (r *Runner) updateActive(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey && kmsg.String() == "ctrl+h" {
		if hint := r.sess.ShowHint(); hint != "" {
			r.hint = hint
		}
		return r, nil
	}

	if r.input.free {
		if isKey && kmsg.String() == "enter" {
			return r.submit(r.input.text.Value())
		}
		var cmd tea.Cmd
		r.input.text, cmd = r.input.text.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	r.input.choice, cmd = r.input.choice.Update(msg)
	if r.input.choice.Submitted {
		return r.submit(r.input.choice.Value())
	}
	return r, cmd
}

// submit grades the answer and applies the profile delta immediately;
// the feedback phase is purely display.
func (r *Runner) submit(given string) (screen.Screen, tea.Cmd) {
	elapsed := time.Since(r.questionStart).Seconds()

	fb, delta, err := r.sess.Submit(r.state.Profile, given, elapsed)
	if err != nil {
		r.err = err
		return r, nil
	}
	r.feedback = fb
	r.state.ApplyDelta(delta, time.Now())

	// Color the choices now that the outcome is known.
	if !r.input.free {
		q, _ := r.sess.CurrentQuestion()
		correctIdx := -1
		for i, opt := range q.Options {
			if adapt.CheckAnswer(opt, q) {
				correctIdx = i
				break
			}
		}
		r.input.choice.Reveal(correctIdx)
	} else {
		r.input.text.Submit(fb.Correct)
	}
	return r, nil
}

func (r *Runner) updateFeedback(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return r, nil
	}

	r.sess.Advance()
	if r.sess.Completed() {
		sum := r.state.FinishQuiz(r.sess, time.Now())
		r.summary = &sum
		return r, nil
	}
	r.loadQuestion()
	if r.input.free {
		return r, r.input.text.Init()
	}
	return r, nil
}

func (r *Runner) updateComplete(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if ok && kmsg.String() == "enter" {
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *Runner) Title() string {
	return r.sess.Quiz.Title
}

// KeyHints adjusts the footer to the current phase.
func (r *Runner) KeyHints() []layout.KeyHint {
	switch r.sess.Phase {
	case session.PhaseActive:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
		if q, ok := r.sess.CurrentQuestion(); ok && len(q.Hints) > 0 {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+H", Description: "Hint"})
		}
		return append(hints,
			layout.KeyHint{Key: "Esc", Description: "Abandon"},
			layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
		)
	case session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to Dashboard"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// progressLabel renders "Question N of M".
func (r *Runner) progressLabel() string {
	total := len(r.sess.Quiz.Questions)
	n := r.sess.Index + 1
	if n > total {
		n = total
	}
	return fmt.Sprintf("Question %d of %d", n, total)
}
