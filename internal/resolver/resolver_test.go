package resolver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func yesNoQuestion(id string) quiz.Question {
	return quiz.Question{ID: id, Options: []quiz.Option{{Text: "Yes"}, {Text: "No"}}}
}

func resultIDs(results []quiz.Result) []quiz.ResultID {
	ids := make([]quiz.ResultID, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestResolve_SingleEdgeMatch(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-10-x"},
	}}
	results := []quiz.Result{{ID: "10", Title: "R10"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "10" || got[0].Title != "R10" {
		t.Fatalf("got %+v, want [R10]", got)
	}
}

func TestResolve_NonMatchingAnswerYieldsNothing(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-10-x"},
	}}
	results := []quiz.Result{{ID: "10", Title: "R10"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("No")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestResolve_ResultChaining(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "result-1-a", Target: "result-2-b"},
	}}
	results := []quiz.Result{{ID: "1"}, {ID: "2"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	want := []quiz.ResultID{"1", "2"}
	if !reflect.DeepEqual(resultIDs(got), want) {
		t.Fatalf("got %v, want %v", resultIDs(got), want)
	}
}

func TestResolve_OptionIndexFidelity(t *testing.T) {
	// Answer "B" over ["A","B","C"] must follow only option-1 edges.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q1", SourceHandle: "option-1", Target: "result-2-a"},
		{Source: "question-q1", SourceHandle: "option-2", Target: "result-3-a"},
	}}
	results := []quiz.Result{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	questions := []quiz.Question{{ID: "q1", Options: []quiz.Option{{Text: "A"}, {Text: "B"}, {Text: "C"}}}}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("B")})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resultIDs(got), []quiz.ResultID{"2"}) {
		t.Fatalf("got %v, want [2]", resultIDs(got))
	}
}

func TestResolve_DeduplicatesByID(t *testing.T) {
	// Two paths reach result 5; it must be reported once.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-5-a"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-5-b"},
	}}
	results := []quiz.Result{{ID: "5"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2")}
	answers := map[string]quiz.Answer{"q1": quiz.Text("Yes"), "q2": quiz.Text("Yes")}

	got, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
}

func TestResolve_FirstDiscoveryOrder(t *testing.T) {
	// q1 chains into q2; edges are followed in document order, starts in
	// question-list order, so discovery order is pinned.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-1", Target: "result-2-a"},
		{Source: "question-q3", SourceHandle: "option-0", Target: "result-3-a"},
	}}
	results := []quiz.Result{{ID: "3"}, {ID: "2"}, {ID: "1"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2"), yesNoQuestion("q3")}
	answers := map[string]quiz.Answer{
		"q1": quiz.Text("Yes"),
		"q2": quiz.Text("No"),
		"q3": quiz.Text("Yes"),
	}

	got, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	want := []quiz.ResultID{"1", "2", "3"}
	if !reflect.DeepEqual(resultIDs(got), want) {
		t.Fatalf("got %v, want %v", resultIDs(got), want)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-2-a"},
	}}
	results := []quiz.Result{{ID: "1"}, {ID: "2"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2")}
	answers := map[string]quiz.Answer{"q1": quiz.Text("Yes"), "q2": quiz.Text("Yes")}

	first, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	for range 20 {
		again, err := Resolve(graph, results, questions, answers)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("output varied between runs: %v vs %v", resultIDs(again), resultIDs(first))
		}
	}
}

func TestResolve_UnansweredQuestionHaltsBranch(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-1-a"},
		{Source: "question-q3", SourceHandle: "option-0", Target: "result-2-a"},
	}}
	results := []quiz.Result{{ID: "1"}, {ID: "2"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2"), yesNoQuestion("q3")}
	// q2 unanswered: its branch halts, q3's branch is unaffected.
	answers := map[string]quiz.Answer{"q1": quiz.Text("Yes"), "q3": quiz.Text("Yes")}

	got, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resultIDs(got), []quiz.ResultID{"2"}) {
		t.Fatalf("got %v, want [2]", resultIDs(got))
	}
}

func TestResolve_DeadEndIsNotAnError(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-1-a"},
	}}
	results := []quiz.Result{{ID: "1"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	// Answered index 1 has no edge.
	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("No")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestResolve_MalformedResultIDContributesNothing(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-broken-id"},
		{Source: "result-broken-id", Target: "result-7-a"},
	}}
	results := []quiz.Result{{ID: "7"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	// Traversal continues through the malformed node; only it contributes nothing.
	if !reflect.DeepEqual(resultIDs(got), []quiz.ResultID{"7"}) {
		t.Fatalf("got %v, want [7]", resultIDs(got))
	}
}

func TestResolve_CycleGuard(t *testing.T) {
	// q2 and q3 form a loop; q1 is still a clean start node.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "question-q3"},
		{Source: "question-q3", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q3", SourceHandle: "option-0", Target: "result-1-a"},
	}}
	results := []quiz.Result{{ID: "1"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2"), yesNoQuestion("q3")}
	answers := map[string]quiz.Answer{
		"q1": quiz.Text("Yes"), "q2": quiz.Text("Yes"), "q3": quiz.Text("Yes"),
	}

	got, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	// The looping path halts silently; the result edge still fires.
	if !reflect.DeepEqual(resultIDs(got), []quiz.ResultID{"1"}) {
		t.Fatalf("got %v, want [1]", resultIDs(got))
	}
}

func TestResolve_StartNodesDerivedFromEdges(t *testing.T) {
	// No explicit question list: starts come from edge sources that are
	// question nodes and never appear as targets.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-1-a"},
	}}
	results := []quiz.Result{{ID: "1"}}

	// Without a question list nothing normalizes, so traversal halts at q1.
	got, err := Resolve(graph, results, nil, map[string]quiz.Answer{"q1": quiz.Text("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty (no questions to normalize against)", got)
	}
}

func TestResolve_ExplicitQuestionListFiltersTargets(t *testing.T) {
	// q2 appears as a target, so only q1 is a start even though both are in
	// the question list.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-1", Target: "question-q2"},
		{Source: "question-q2", SourceHandle: "option-0", Target: "result-1-a"},
	}}
	results := []quiz.Result{{ID: "1"}}
	questions := []quiz.Question{yesNoQuestion("q1"), yesNoQuestion("q2")}
	// q2 alone answered "Yes" would reach result 1 if q2 were a start; it is
	// not, and q1's answer doesn't select option-1, so nothing is reached.
	answers := map[string]quiz.Answer{"q1": quiz.Text("Yes"), "q2": quiz.Text("Yes")}

	got, err := Resolve(graph, results, questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestResolve_MissingEdgesIsAnError(t *testing.T) {
	if _, err := Resolve(nil, nil, nil, nil); !errors.Is(err, ErrNoEdges) {
		t.Fatalf("nil graph: err = %v, want ErrNoEdges", err)
	}
	if _, err := Resolve(&quiz.LogicGraph{}, nil, nil, nil); !errors.Is(err, ErrNoEdges) {
		t.Fatalf("nil edges: err = %v, want ErrNoEdges", err)
	}
	// An empty-but-present edge list is valid content.
	got, err := Resolve(&quiz.LogicGraph{Edges: []quiz.Edge{}}, nil, nil, nil)
	if err != nil {
		t.Fatalf("empty edges: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty edges: got %v", got)
	}
}

func TestResolve_UnconditionalQuestionEdge(t *testing.T) {
	// An edge without a handle out of an answered question is always followed.
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", Target: "result-1-a"},
	}}
	results := []quiz.Result{{ID: "1"}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("No")})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resultIDs(got), []quiz.ResultID{"1"}) {
		t.Fatalf("got %v, want [1]", resultIDs(got))
	}
}

func TestResolve_ResultRecordsPassThroughUnmodified(t *testing.T) {
	graph := &quiz.LogicGraph{Edges: []quiz.Edge{
		{Source: "question-q1", SourceHandle: "option-0", Target: "result-10-x"},
	}}
	results := []quiz.Result{{
		ID: "10", Title: "Minoxidil 5%", RedirectURL: "/products/minoxidil",
		Products: []quiz.ProductRef{{ID: "p1", Name: "Minoxidil"}},
		Addons:   []quiz.ProductRef{{ID: "p2", Name: "Biotin"}},
	}}
	questions := []quiz.Question{yesNoQuestion("q1")}

	got, err := Resolve(graph, results, questions, map[string]quiz.Answer{"q1": quiz.Text("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], results[0]) {
		t.Fatalf("result record was not passed through unmodified: %+v", got)
	}
}
