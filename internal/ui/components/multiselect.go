package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/ui/theme"
)

// MultiSelect is a checkbox-style option list. Space toggles the highlighted
// option, enter commits the selection.
type MultiSelect struct {
	Prompt    string
	Options   []string
	Cursor    int
	Checked   map[int]bool
	Submitted bool
}

// NewMultiSelect creates a new multi-select component.
func NewMultiSelect(prompt string, options []string) MultiSelect {
	return MultiSelect{
		Prompt:  prompt,
		Options: options,
		Checked: make(map[int]bool),
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling and submission.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case " ", "space":
		m.Checked[m.Cursor] = !m.Checked[m.Cursor]
	case "enter":
		if len(m.Values()) > 0 {
			m.Submitted = true
		}
	}

	return m, nil
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Submitted {
			prefix = "▸ "
		}

		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)

		switch {
		case m.Checked[i]:
			s += theme.Checked.Render(line) + "\n"
		case i == m.Cursor && !m.Submitted:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	s += "\n" + theme.Hint.Render("space to toggle, enter to continue")
	return s
}

// Values returns the texts of all checked options, in option order.
func (m MultiSelect) Values() []string {
	var vals []string
	for i, opt := range m.Options {
		if m.Checked[i] {
			vals = append(vals, opt)
		}
	}
	return vals
}
