package navigator

import "github.com/abhisek/quizflow/internal/quiz"

// IsAnswerComplete reports whether an answer satisfies a step well enough to
// advance past it. Callers use this to gate NextStepIndex; the navigator
// itself never consults it.
//
//   - multiple-choice questions need a non-empty selection list
//   - single-choice and dropdown questions need a non-empty string
//   - form steps need a non-empty value for every declared input
//   - component steps accept any truthy answer (the "viewed" marker included)
func IsAnswerComplete(step quiz.Step, answer quiz.Answer) bool {
	switch step.StepType {
	case quiz.StepQuestion:
		if step.QuestionType == quiz.MultipleChoice {
			return answer.Kind() == quiz.AnswerList && len(answer.Items()) > 0
		}
		return answer.Kind() == quiz.AnswerText && answer.Str() != ""

	case quiz.StepForm:
		if answer.Kind() != quiz.AnswerObject {
			return false
		}
		for _, input := range step.FormInputs {
			v, ok := answer.Field(input.Name)
			if !ok || !v.Truthy() {
				return false
			}
		}
		return true

	default:
		return answer.Truthy()
	}
}
