// Package rules flattens a quiz logic graph into a table of human-inspectable
// condition→result rules. It is a diagnostic facility for quiz authors and
// never sits on the live decision path; the resolver is the runtime engine.
package rules

import "github.com/abhisek/quizflow/internal/quiz"

// Rule is one complete path through the logic graph: the option selections
// that walk it, and the result it terminates in. Result is empty when the
// path dead-ends or loops before reaching a result node.
type Rule struct {
	Conditions map[string]int // question id → selected option index
	Result     quiz.ResultID
}

// Compile materializes one rule per option-selection edge (every edge that
// carries a source handle, not only designated start nodes) by chasing each
// seed forward until a result node (or a dead end) is hit. Overlapping paths
// therefore produce overlapping rules; this is a debugging aid, not a
// deduplicated decision table.
func Compile(edges []quiz.Edge) []Rule {
	var out []Rule
	for _, e := range edges {
		src := quiz.ParseNodeRef(e.Source)
		idx, ok := quiz.ParseOptionHandle(e.SourceHandle)
		if src.Kind != quiz.NodeQuestion || !ok {
			continue
		}

		rule := Rule{Conditions: map[string]int{src.QuestionID: idx}}
		chase(e, edges, &rule)
		out = append(out, rule)
	}
	return out
}

// chase follows the path onward from seed, merging each further option
// selection into the rule, until a result node terminates it. Only the first
// edge (in document order) out of each question is followed. A node revisit
// stops the chase so cyclic graphs cannot hang the compiler.
func chase(seed quiz.Edge, edges []quiz.Edge, rule *Rule) {
	visited := map[string]bool{seed.Source: true}
	current := seed

	for {
		target := quiz.ParseNodeRef(current.Target)
		if target.Kind == quiz.NodeResult {
			rule.Result = target.ResultID
			return
		}
		if target.Kind != quiz.NodeQuestion || visited[current.Target] {
			return
		}
		visited[current.Target] = true

		next, ok := firstOutgoing(edges, current.Target)
		if !ok {
			return
		}
		if idx, hasHandle := quiz.ParseOptionHandle(next.SourceHandle); hasHandle {
			rule.Conditions[target.QuestionID] = idx
		}
		current = next
	}
}

func firstOutgoing(edges []quiz.Edge, source string) (quiz.Edge, bool) {
	for _, e := range edges {
		if e.Source == source {
			return e, true
		}
	}
	return quiz.Edge{}, false
}
