package player

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/ui/components"
	"github.com/abhisek/quizflow/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, p.errMsg)
	}
	if p.showingQuitConfirm {
		return p.renderQuitConfirm(width)
	}

	step := p.currentStep()
	if step == nil || p.finished {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Working out your recommendations...")
	}

	bar := components.NewProgressBar("", p.progressPercent(), false, width/2)

	var body string
	switch {
	case step.StepType == quiz.StepForm:
		body = renderTitled(step.Title, p.form.View())
	case step.StepType == quiz.StepQuestion && step.QuestionType == quiz.MultipleChoice:
		body = p.multi.View()
	case step.StepType == quiz.StepQuestion:
		body = p.choice.View()
	default:
		body = renderTitled(step.Title, theme.Hint.Render("press enter to continue"))
	}

	content := "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) +
		"\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)

	return content
}

func (p *PlayerScreen) progressPercent() float64 {
	if len(p.def.Steps) == 0 {
		return 1
	}
	if p.current == -1 {
		return 1
	}
	return float64(p.current) / float64(len(p.def.Steps))
}

func renderTitled(title, body string) string {
	if title == "" {
		return body
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title) +
		"\n\n" + body
}

func (p *PlayerScreen) renderQuitConfirm(width int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		p.quitNo.View(), "   ", p.quitYes.View())

	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave this quiz?") +
			"\n\n" +
			theme.Hint.Render("Your answers so far will be kept.") +
			"\n\n" + buttons)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderError(width int, msg string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("Something went wrong: "+msg+"\n\nPress any key to go back.")
}
