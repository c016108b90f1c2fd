package rules

import "github.com/abhisek/quizflow/internal/quiz"

// ReadableRule is a Rule with option indices substituted by option text.
// Question ids stay raw and the result stays an id rather than a title.
type ReadableRule struct {
	Conditions map[string]string // question id → selected option text
	Result     quiz.ResultID
}

// Humanize rewrites compiled rules for display. Option indices become the
// corresponding option text where the definition knows the question; indices
// out of range (or questions absent from the definition) keep their raw
// "option-<N>" handle form. Result ids are looked up in the definition's
// result list but only the id is retained.
func Humanize(compiled []Rule, def *quiz.QuizDefinition) []ReadableRule {
	questions := make(map[string]*quiz.Question)
	if def != nil {
		for i := range def.Questions {
			questions[def.Questions[i].ID] = &def.Questions[i]
		}
	}

	out := make([]ReadableRule, 0, len(compiled))
	for _, r := range compiled {
		rr := ReadableRule{
			Conditions: make(map[string]string, len(r.Conditions)),
			Result:     r.Result,
		}
		for qid, idx := range r.Conditions {
			if q, ok := questions[qid]; ok && idx >= 0 && idx < len(q.Options) {
				rr.Conditions[qid] = q.Options[idx].Text
			} else {
				rr.Conditions[qid] = quiz.OptionHandle(idx)
			}
		}
		out = append(out, rr)
	}
	return out
}
