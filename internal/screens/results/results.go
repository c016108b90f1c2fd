package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/ui/components"
	"github.com/abhisek/quizflow/internal/ui/layout"
	"github.com/abhisek/quizflow/internal/ui/theme"
)

// ResultsScreen shows the recommendations a completed quiz produced. The
// list view lets the respondent pick a recommendation; the detail view shows
// its products and add-ons.
type ResultsScreen struct {
	quizTitle string
	recs      []quiz.Result
	menu      components.Menu
	detail    *quiz.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for the given recommendations.
func New(quizTitle string, recs []quiz.Result) *ResultsScreen {
	s := &ResultsScreen{quizTitle: quizTitle, recs: recs}

	items := make([]components.MenuItem, len(recs))
	for i := range recs {
		rec := &recs[i]
		label := rec.Title
		if label == "" {
			label = fmt.Sprintf("Recommendation %s", rec.ID)
		}
		items[i] = components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				s.detail = rec
				return nil
			},
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Recommendations"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.detail != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to list"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "Q":
			return s, tea.Quit
		case "esc":
			if s.detail != nil {
				s.detail = nil
				return s, nil
			}
			return s, tea.Quit
		}
	}

	if s.detail == nil {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if len(s.recs) == 0 {
		return "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No recommendations matched your answers.\n\nPress q to exit.")
	}

	if s.detail != nil {
		return s.renderDetail(width)
	}

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Based on your answers to \"%s\":", s.quizTitle))

	return "\n" + heading + "\n\n" + s.menu.View()
}

func (s *ResultsScreen) renderDetail(width int) string {
	rec := s.detail
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(rec.Title))
	b.WriteString("\n\n")

	if rec.Description != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(rec.Description))
		b.WriteString("\n\n")
	}

	if len(rec.Products) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Products"))
		b.WriteString("\n")
		for _, pr := range rec.Products {
			b.WriteString("  • " + pr.Name + "\n")
		}
		b.WriteString("\n")
	}

	if len(rec.Addons) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Add-ons"))
		b.WriteString("\n")
		for _, pr := range rec.Addons {
			b.WriteString("  • " + pr.Name + "\n")
		}
		b.WriteString("\n")
	}

	if rec.RedirectURL != "" {
		b.WriteString(theme.Hint.Render("More at: " + rec.RedirectURL))
	}

	box := theme.Card.Render(b.String())
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
