// Package resolver walks a quiz logic graph under a completed answer map and
// collects the result records the answers lead to. It is pure data
// transformation: graph in, ordered recommendations out.
package resolver

import (
	"errors"

	"github.com/abhisek/quizflow/internal/quiz"
)

// ErrNoEdges is returned when the logic graph or its edge list is missing
// entirely. That is an integration bug, distinct from an authored graph that
// merely leads nowhere (which yields an empty result list).
var ErrNoEdges = errors.New("logic graph has no edge list")

// Resolve traverses the logic graph depth-first from every starting question
// node, following only the edges selected by the normalized answers, and
// returns the result records reached, deduplicated by id, in first-discovery
// order. The ordering is contractual: edges are followed in document order
// and starting nodes in their discovered order, so identical inputs always
// produce identical output.
//
// Content anomalies never fail: unanswered questions halt their branch,
// unparseable result ids contribute nothing, and a cycle terminates only the
// path that closed it.
func Resolve(graph *quiz.LogicGraph, results []quiz.Result, questions []quiz.Question, answers map[string]quiz.Answer) ([]quiz.Result, error) {
	if graph == nil || graph.Edges == nil {
		return nil, ErrNoEdges
	}

	canonical := NormalizeAnswers(questions, answers)

	outgoing := make(map[string][]quiz.Edge, len(graph.Edges))
	for _, e := range graph.Edges {
		outgoing[e.Source] = append(outgoing[e.Source], e)
	}

	resultByID := make(map[quiz.ResultID]int, len(results))
	for i, r := range results {
		if _, dup := resultByID[r.ID]; !dup {
			resultByID[r.ID] = i
		}
	}

	collected := make(map[quiz.ResultID]bool)
	out := []quiz.Result{}
	for _, start := range startNodes(graph.Edges, questions) {
		walk(start, outgoing, canonical, results, resultByID, collected, &out)
	}
	return out, nil
}

// startNodes returns the question node ids traversal begins from: question
// nodes that never appear as an edge target. With an explicit question list
// the candidates come from it in list order; otherwise they are derived from
// the edge sources in document order.
func startNodes(edges []quiz.Edge, questions []quiz.Question) []string {
	isTarget := make(map[string]bool, len(edges))
	for _, e := range edges {
		isTarget[e.Target] = true
	}

	var starts []string
	if len(questions) > 0 {
		for _, q := range questions {
			if id := quiz.QuestionNodeID(q.ID); !isTarget[id] {
				starts = append(starts, id)
			}
		}
		return starts
	}

	seen := make(map[string]bool)
	for _, e := range edges {
		if quiz.ParseNodeRef(e.Source).Kind != quiz.NodeQuestion {
			continue
		}
		if seen[e.Source] || isTarget[e.Source] {
			continue
		}
		seen[e.Source] = true
		starts = append(starts, e.Source)
	}
	return starts
}

// frame is one node occurrence on the traversal stack. parent links frames
// into the path that discovered them, so the cycle guard can walk ancestors
// without copying a visited set per path.
type frame struct {
	node   string
	parent int
}

// walk runs an explicit-stack depth-first traversal from start, preserving
// the discovery order a recursive walk would produce (children are pushed in
// reverse so the first edge in document order is expanded first).
func walk(start string, outgoing map[string][]quiz.Edge, canonical map[string]int, results []quiz.Result, resultByID map[quiz.ResultID]int, collected map[quiz.ResultID]bool, out *[]quiz.Result) {
	arena := []frame{{node: start, parent: -1}}
	stack := []int{0}

	for len(stack) > 0 {
		fi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f := arena[fi]

		if onPath(arena, f.parent, f.node) {
			continue
		}

		var next []quiz.Edge
		ref := quiz.ParseNodeRef(f.node)
		switch ref.Kind {
		case quiz.NodeResult:
			if ref.ResultID != "" && !collected[ref.ResultID] {
				if i, ok := resultByID[ref.ResultID]; ok {
					collected[ref.ResultID] = true
					*out = append(*out, results[i])
				}
			}
			// Result→result chaining: keep following outgoing edges so a
			// reached result can pull in companion recommendations.
			next = outgoing[f.node]

		case quiz.NodeQuestion:
			idx, answered := canonical[ref.QuestionID]
			if !answered {
				continue
			}
			for _, e := range outgoing[f.node] {
				if e.SourceHandle == "" {
					next = append(next, e)
					continue
				}
				if n, ok := quiz.ParseOptionHandle(e.SourceHandle); ok && n == idx {
					next = append(next, e)
				}
			}

		default:
			continue
		}

		for i := len(next) - 1; i >= 0; i-- {
			arena = append(arena, frame{node: next[i].Target, parent: fi})
			stack = append(stack, len(arena)-1)
		}
	}
}

// onPath reports whether node already occurs among the ancestors starting at
// frame index fi.
func onPath(arena []frame, fi int, node string) bool {
	for ; fi >= 0; fi = arena[fi].parent {
		if arena[fi].node == node {
			return true
		}
	}
	return false
}
