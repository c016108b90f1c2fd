// Package navigator decides which quiz step to present next. It consumes the
// linear step list plus the optional flow-rule override table and is a pure
// function of its arguments: no state, safe for concurrent quiz-takers.
package navigator

import "github.com/abhisek/quizflow/internal/quiz"

// Complete is returned when there is no next step to present.
const Complete = -1

// NextStepIndex returns the index of the step to show after an answer has
// been recorded at current, or Complete when the quiz is finished.
//
// A flow rule overrides the sequential order when its source matches the
// current step and its option condition matches the answer (list answers
// match by containment). Rules are scanned in document order and the first
// rule that both matches and resolves to a real step wins; a matching rule
// whose target step does not exist is treated as no match. Without a usable
// rule the candidate is simply current+1. Steps flagged shouldSkip are then
// bypassed, however the candidate was chosen.
//
// all carries the full answer map for rule conditions that may consult
// earlier answers; the current rule set only inspects the current answer.
func NextStepIndex(def *quiz.QuizDefinition, current int, answer quiz.Answer, all map[string]quiz.Answer) int {
	if def == nil || current < 0 || current >= len(def.Steps) {
		return Complete
	}
	step := def.Steps[current]

	candidate := current + 1
	for _, rule := range def.Flow {
		if rule.From.QuestionID != step.ID {
			continue
		}
		if rule.From.Option != nil && !answer.Matches(rule.From.Option.Text) {
			continue
		}
		if target, ok := stepIndex(def.Steps, rule.To.QuestionID); ok {
			candidate = target
			break
		}
	}

	for candidate < len(def.Steps) && def.Steps[candidate].ShouldSkip {
		candidate++
	}
	if candidate >= len(def.Steps) {
		return Complete
	}
	return candidate
}

// FirstStepIndex returns the index of the first presentable step, walking
// past leading shouldSkip steps, or Complete for an empty quiz.
func FirstStepIndex(def *quiz.QuizDefinition) int {
	if def == nil {
		return Complete
	}
	i := 0
	for i < len(def.Steps) && def.Steps[i].ShouldSkip {
		i++
	}
	if i >= len(def.Steps) {
		return Complete
	}
	return i
}

// stepIndex finds a step by id.
func stepIndex(steps []quiz.Step, id string) (int, bool) {
	for i, s := range steps {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}
