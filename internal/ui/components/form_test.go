package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeText(f Form, s string) Form {
	for _, r := range s {
		f, _ = f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return f
}

func contactForm() Form {
	return NewForm([]FormField{
		{Name: "name", Label: "Name", Required: true, Input: NewTextInput("", false, 64)},
		{Name: "email", Label: "Email", Required: true, Input: NewTextInput("", false, 64)},
	})
}

func TestFormTabMovesFocus(t *testing.T) {
	f := contactForm()
	if f.Focused != 0 {
		t.Fatalf("initial focus = %d, want 0", f.Focused)
	}

	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if f.Focused != 1 {
		t.Errorf("focus after tab = %d, want 1", f.Focused)
	}

	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if f.Focused != 0 {
		t.Errorf("focus after shift+tab = %d, want 0", f.Focused)
	}
}

func TestFormCollectsValues(t *testing.T) {
	f := contactForm()
	f = typeText(f, "Ada")
	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	f = typeText(f, "ada@example.com")

	vals := f.Values()
	if vals["name"] != "Ada" {
		t.Errorf("name = %q, want Ada", vals["name"])
	}
	if vals["email"] != "ada@example.com" {
		t.Errorf("email = %q, want ada@example.com", vals["email"])
	}
}

func TestFormRequiresAllFieldsToSubmit(t *testing.T) {
	f := contactForm()
	f = typeText(f, "Ada")

	// Enter on the last field with an empty required field does nothing.
	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if f.Submitted {
		t.Fatal("form submitted with an empty required field")
	}

	f = typeText(f, "ada@example.com")
	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !f.Submitted {
		t.Fatal("form did not submit once every field was filled")
	}
}
