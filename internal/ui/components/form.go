package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/ui/theme"
)

// FormField is one labeled input in a Form.
type FormField struct {
	Name     string
	Label    string
	Required bool
	Input    TextInput
}

// Form is a vertical stack of text inputs. Tab and shift+tab move between
// fields, enter on the last field submits when every required field is
// filled.
type Form struct {
	Fields    []FormField
	Focused   int
	Submitted bool
}

// NewForm creates a form from field definitions.
func NewForm(fields []FormField) Form {
	f := Form{Fields: fields}
	for i := range f.Fields {
		if i == 0 {
			f.Fields[i].Input.Model.Focus()
		} else {
			f.Fields[i].Input.Model.Blur()
		}
	}
	return f
}

// Init focuses the first field.
func (f Form) Init() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[0].Input.Init()
}

// Update handles focus movement and forwards input to the focused field.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if f.Submitted || len(f.Fields) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f.focus(f.Focused + 1), nil
		case "shift+tab", "up":
			return f.focus(f.Focused - 1), nil
		case "enter":
			if f.Focused < len(f.Fields)-1 {
				return f.focus(f.Focused + 1), nil
			}
			if f.Complete() {
				f.Submitted = true
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.Fields[f.Focused].Input, cmd = f.Fields[f.Focused].Input.Update(msg)
	return f, cmd
}

func (f Form) focus(i int) Form {
	if i < 0 || i >= len(f.Fields) {
		return f
	}
	f.Fields[f.Focused].Input.Model.Blur()
	f.Focused = i
	f.Fields[i].Input.Model.Focus()
	return f
}

// Complete reports whether every required field has a value.
func (f Form) Complete() bool {
	for _, fld := range f.Fields {
		if fld.Required && fld.Input.Value() == "" {
			return false
		}
	}
	return true
}

// Values returns the current field values keyed by field name.
func (f Form) Values() map[string]string {
	vals := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		vals[fld.Name] = fld.Input.Value()
	}
	return vals
}

// View renders the form.
func (f Form) View() string {
	var s string
	for i, fld := range f.Fields {
		label := fld.Label
		if fld.Required {
			label += " *"
		}
		if i == f.Focused && !f.Submitted {
			s += theme.Selected.Render(label) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n"
		}
		s += fld.Input.View() + "\n\n"
	}
	s += theme.Hint.Render("tab to move, enter to submit")
	return s
}
