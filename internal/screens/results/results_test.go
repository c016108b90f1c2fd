package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizflow/internal/quiz"
)

func sampleRecs() []quiz.Result {
	return []quiz.Result{
		{ID: "1", Title: "Sleep Bundle", Description: "For better rest",
			Products: []quiz.ProductRef{{ID: "p1", Name: "Melatonin Gummies"}},
			Addons:   []quiz.ProductRef{{ID: "a1", Name: "Sleep Mask"}}},
		{ID: "2", Title: "Focus Pack"},
	}
}

func TestListShowsAllRecommendations(t *testing.T) {
	s := New("Wellness Quiz", sampleRecs())
	view := s.View(80, 24)

	for _, want := range []string{"Sleep Bundle", "Focus Pack", "Wellness Quiz"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterOpensDetail(t *testing.T) {
	s := New("Wellness Quiz", sampleRecs())

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	rs := updated.(*ResultsScreen)
	if rs.detail == nil {
		t.Fatal("expected detail view after enter")
	}

	view := rs.View(80, 24)
	for _, want := range []string{"Melatonin Gummies", "Sleep Mask", "For better rest"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestEscReturnsToList(t *testing.T) {
	s := New("Wellness Quiz", sampleRecs())
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.detail == nil {
		t.Fatal("expected detail view")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.detail != nil {
		t.Error("expected list view after esc")
	}
}

func TestQQuits(t *testing.T) {
	s := New("Wellness Quiz", sampleRecs())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEmptyRecommendations(t *testing.T) {
	s := New("Wellness Quiz", nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "No recommendations") {
		t.Error("expected empty-state message")
	}
}
