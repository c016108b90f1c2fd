package resolver

import (
	"math"

	"github.com/abhisek/quizflow/internal/quiz"
)

// NormalizeAnswers reduces every answered question to its canonical
// zero-based option index. Questions whose answer admits no valid
// interpretation are simply absent from the returned map and halt traversal
// wherever they are reached.
//
// Interpretation precedence:
//
//  1. a string answer is matched exactly against the question's option texts
//  2. a numeric answer is tried 1-based first, then 0-based; ambiguous by
//     construction (the value 1 is valid under both readings for any
//     multi-option question)
//  3. an object answer may carry an explicit zero-based "index" field
func NormalizeAnswers(questions []quiz.Question, answers map[string]quiz.Answer) map[string]int {
	canonical := make(map[string]int, len(answers))
	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		if idx, ok := canonicalIndex(q, answer); ok {
			canonical[q.ID] = idx
		}
	}
	return canonical
}

func canonicalIndex(q quiz.Question, answer quiz.Answer) (int, bool) {
	switch answer.Kind() {
	case quiz.AnswerText:
		for i, opt := range q.Options {
			if opt.Text == answer.Str() {
				return i, true
			}
		}

	case quiz.AnswerNumber:
		n := answer.Num()
		if n != math.Trunc(n) {
			return 0, false
		}
		v := int(n)
		// 1-based wins when valid; fall back to 0-based.
		if idx := v - 1; idx >= 0 && idx < len(q.Options) {
			return idx, true
		}
		if v >= 0 && v < len(q.Options) {
			return v, true
		}

	case quiz.AnswerObject:
		if idx, ok := answer.Index(); ok && idx >= 0 && idx < len(q.Options) {
			return idx, true
		}
	}
	return 0, false
}
