package quiz

import (
	"fmt"
	"strings"
)

// Lint performs structural checks on a parsed quiz definition and returns a
// combined error describing every problem found, or nil if the document is
// clean. These are authoring problems, not runtime errors: the engines
// degrade to well-defined no-ops on all of them, so Lint exists for the
// validate command and CI checks, never on the live decision path.
func Lint(def *QuizDefinition) error {
	if def == nil {
		return fmt.Errorf("nil quiz definition")
	}

	var errs []string

	stepIDs := make(map[string]bool, len(def.Steps))
	for _, s := range def.Steps {
		if stepIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate step id: %q", s.ID))
		}
		stepIDs[s.ID] = true

		if s.StepType == StepQuestion && len(s.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question step %q has no options", s.ID))
		}
		if s.StepType == StepForm && len(s.FormInputs) == 0 {
			errs = append(errs, fmt.Sprintf("form step %q has no form inputs", s.ID))
		}
	}

	// Flow rules must point at real steps on both ends. Dangling targets fall
	// back to sequential order at runtime, but they are always author mistakes.
	for i, r := range def.Flow {
		if !stepIDs[r.From.QuestionID] {
			errs = append(errs, fmt.Sprintf("flow rule %d: unknown source step %q", i, r.From.QuestionID))
		}
		if !stepIDs[r.To.QuestionID] {
			errs = append(errs, fmt.Sprintf("flow rule %d: unknown target step %q", i, r.To.QuestionID))
		}
	}

	// Overlapping flow rules: the first match in document order wins, so a
	// second rule for the same (step, option) pair is dead, and an optionless
	// rule matches every answer, so any later rule for the same step is dead
	// too.
	seenRules := make(map[string]int)
	unconditional := make(map[string]int)
	for i, r := range def.Flow {
		key := r.From.QuestionID
		if r.From.Option != nil {
			key += "\x00" + r.From.Option.Text
		}
		if first, dup := seenRules[key]; dup {
			errs = append(errs, fmt.Sprintf("flow rule %d is shadowed by rule %d for step %q", i, first, r.From.QuestionID))
			continue
		}
		seenRules[key] = i
		if first, ok := unconditional[r.From.QuestionID]; ok {
			errs = append(errs, fmt.Sprintf("flow rule %d is shadowed by unconditional rule %d for step %q", i, first, r.From.QuestionID))
			continue
		}
		if r.From.Option == nil {
			unconditional[r.From.QuestionID] = i
		}
	}

	questionIDs := make(map[string]*Question, len(def.Questions))
	for i := range def.Questions {
		q := &def.Questions[i]
		if _, dup := questionIDs[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question id: %q", q.ID))
		}
		questionIDs[q.ID] = q

		// String answers resolve to an index by exact text match; duplicate
		// texts make that resolution ambiguous.
		texts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if texts[o.Text] {
				errs = append(errs, fmt.Sprintf("question %q repeats option text %q", q.ID, o.Text))
			}
			texts[o.Text] = true
		}
	}

	resultIDs := make(map[ResultID]bool, len(def.Results))
	for _, r := range def.Results {
		if resultIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate result id: %q", r.ID))
		}
		resultIDs[r.ID] = true
	}

	if def.Logic != nil {
		errs = append(errs, lintLogicGraph(def.Logic, questionIDs, resultIDs)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("quiz definition validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func lintLogicGraph(g *LogicGraph, questions map[string]*Question, results map[ResultID]bool) []string {
	var errs []string

	nodeIDs := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeIDs[n.ID] = true
	}

	for i, e := range g.Edges {
		src := ParseNodeRef(e.Source)
		dst := ParseNodeRef(e.Target)

		if src.Kind == NodeUnknown {
			errs = append(errs, fmt.Sprintf("edge %d: unrecognized source node id %q", i, e.Source))
		}
		if dst.Kind == NodeUnknown {
			errs = append(errs, fmt.Sprintf("edge %d: unrecognized target node id %q", i, e.Target))
		}
		if len(nodeIDs) > 0 {
			if !nodeIDs[e.Source] {
				errs = append(errs, fmt.Sprintf("edge %d: source %q not in node list", i, e.Source))
			}
			if !nodeIDs[e.Target] {
				errs = append(errs, fmt.Sprintf("edge %d: target %q not in node list", i, e.Target))
			}
		}

		if e.SourceHandle != "" {
			idx, ok := ParseOptionHandle(e.SourceHandle)
			if !ok {
				errs = append(errs, fmt.Sprintf("edge %d: malformed source handle %q", i, e.SourceHandle))
			} else if src.Kind == NodeQuestion {
				if q, known := questions[src.QuestionID]; known && idx >= len(q.Options) {
					errs = append(errs, fmt.Sprintf("edge %d: handle %q exceeds %d options of question %q",
						i, e.SourceHandle, len(q.Options), src.QuestionID))
				}
			}
		}

		if src.Kind == NodeQuestion && len(questions) > 0 {
			if _, known := questions[src.QuestionID]; !known {
				errs = append(errs, fmt.Sprintf("edge %d: source references unknown question %q", i, src.QuestionID))
			}
		}
		if dst.Kind == NodeResult && dst.ResultID != "" && len(results) > 0 && !results[dst.ResultID] {
			errs = append(errs, fmt.Sprintf("edge %d: target references unknown result %q", i, dst.ResultID))
		}
		if dst.Kind == NodeResult && dst.ResultID == "" {
			errs = append(errs, fmt.Sprintf("edge %d: target %q has no numeric result id", i, e.Target))
		}
	}

	// Cycles are tolerated at traversal time (the loop guard halts the path),
	// but a cycle in an authored quiz is almost always a wiring mistake.
	if cyc := findCycle(g.Edges); len(cyc) > 0 {
		errs = append(errs, fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(cyc, ", ")))
	}

	return errs
}

// findCycle runs Kahn's algorithm over the edge list and returns the node ids
// left with positive in-degree, i.e. those on or downstream of a cycle.
func findCycle(edges []Edge) []string {
	inDegree := make(map[string]int)
	adj := make(map[string][]string)
	var order []string
	seen := make(map[string]bool)

	note := func(id string) {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
			inDegree[id] += 0
		}
	}
	for _, e := range edges {
		note(e.Source)
		note(e.Target)
		adj[e.Source] = append(adj[e.Source], e.Target)
		inDegree[e.Target]++
	}

	var queue []string
	for _, id := range order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited == len(order) {
		return nil
	}
	var cyclic []string
	for _, id := range order {
		if inDegree[id] > 0 {
			cyclic = append(cyclic, id)
		}
	}
	return cyclic
}
