package rules

import (
	"reflect"
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func TestCompile_OneRulePerSelectionEdge(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q1", SourceHandle: "option-1", Target: "result-2-a"},
		{Source: "result-1-a", Target: "result-2-a"}, // no handle: not a seed
	}

	got := Compile(edges)
	if len(got) != 2 {
		t.Fatalf("got %d rules, want 2", len(got))
	}
	want0 := Rule{Conditions: map[string]int{"q1": 0}, Result: "1"}
	want1 := Rule{Conditions: map[string]int{"q1": 1}, Result: "2"}
	if !reflect.DeepEqual(got[0], want0) {
		t.Errorf("rule 0 = %+v, want %+v", got[0], want0)
	}
	if !reflect.DeepEqual(got[1], want1) {
		t.Errorf("rule 1 = %+v, want %+v", got[1], want1)
	}
}

func TestCompile_ChasesThroughQuestions(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-1", Target: "result-9-z"},
	}

	got := Compile(edges)
	if len(got) != 2 {
		t.Fatalf("got %d rules, want 2", len(got))
	}
	// The q1 seed merges q2's selection while chasing to the result.
	want := Rule{Conditions: map[string]int{"q1": 0, "q2": 1}, Result: "9"}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("rule 0 = %+v, want %+v", got[0], want)
	}
	// The q2 edge also seeds its own (overlapping) rule.
	want = Rule{Conditions: map[string]int{"q2": 1}, Result: "9"}
	if !reflect.DeepEqual(got[1], want) {
		t.Errorf("rule 1 = %+v, want %+v", got[1], want)
	}
}

func TestCompile_FirstOutgoingEdgeWins(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q2", SourceHandle: "option-1", Target: "result-2-a"},
	}

	got := Compile(edges)
	if got[0].Result != "1" {
		t.Errorf("chase should follow q2's first edge, got result %q", got[0].Result)
	}
}

func TestCompile_DeadEndLeavesResultEmpty(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
	}
	got := Compile(edges)
	if len(got) != 1 || got[0].Result != "" {
		t.Fatalf("got %+v, want one rule with empty result", got)
	}
}

func TestCompile_CycleTerminates(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "question-q1"},
	}
	got := Compile(edges)
	if len(got) != 2 {
		t.Fatalf("got %d rules, want 2", len(got))
	}
	for i, r := range got {
		if r.Result != "" {
			t.Errorf("rule %d: cyclic chase should end without a result, got %q", i, r.Result)
		}
	}
}

func TestCompile_SkipsMalformedSeeds(t *testing.T) {
	edges := []quiz.Edge{
		{Source: "banner-1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q1", SourceHandle: "option-x", Target: "result-1-a"},
		{Source: "question-q1", Target: "result-1-a"},
	}
	if got := Compile(edges); len(got) != 0 {
		t.Fatalf("got %d rules, want 0", len(got))
	}
}

func TestHumanize_SubstitutesOptionText(t *testing.T) {
	def := &quiz.QuizDefinition{
		Questions: []quiz.Question{
			{ID: "q1", Options: []quiz.Option{{Text: "Dry scalp"}, {Text: "Oily scalp"}}},
		},
		Results: []quiz.Result{{ID: "9", Title: "Shampoo"}},
	}
	compiled := []Rule{
		{Conditions: map[string]int{"q1": 1}, Result: "9"},
		{Conditions: map[string]int{"q1": 7}, Result: "9"},  // out of range
		{Conditions: map[string]int{"ghost": 0}, Result: ""}, // unknown question
	}

	got := Humanize(compiled, def)
	if got[0].Conditions["q1"] != "Oily scalp" {
		t.Errorf("want option text, got %q", got[0].Conditions["q1"])
	}
	// Result stays an id, not the looked-up title.
	if got[0].Result != "9" {
		t.Errorf("result = %q, want raw id", got[0].Result)
	}
	if got[1].Conditions["q1"] != "option-7" {
		t.Errorf("out-of-range index should keep handle form, got %q", got[1].Conditions["q1"])
	}
	if got[2].Conditions["ghost"] != "option-0" {
		t.Errorf("unknown question should keep handle form, got %q", got[2].Conditions["ghost"])
	}
}

func TestHumanize_NilDefinition(t *testing.T) {
	got := Humanize([]Rule{{Conditions: map[string]int{"q1": 0}, Result: "1"}}, nil)
	if got[0].Conditions["q1"] != "option-0" {
		t.Errorf("got %q, want handle form", got[0].Conditions["q1"])
	}
}
