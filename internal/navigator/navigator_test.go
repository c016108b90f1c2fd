package navigator

import (
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func stepList(ids ...string) []quiz.Step {
	steps := make([]quiz.Step, len(ids))
	for i, id := range ids {
		steps[i] = quiz.Step{ID: id, StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
			Options: []quiz.Option{{Text: "X"}, {Text: "Y"}}}
	}
	return steps
}

func TestNextStepIndex_SequentialFallback(t *testing.T) {
	def := &quiz.QuizDefinition{Steps: stepList("s1", "s2", "s3")}

	// With an empty flow table the answer value never matters.
	for _, answer := range []quiz.Answer{quiz.Text("X"), quiz.Text("anything"), quiz.Number(3), {}} {
		if got := NextStepIndex(def, 0, answer, nil); got != 1 {
			t.Errorf("NextStepIndex(0) = %d, want 1", got)
		}
	}
	if got := NextStepIndex(def, 1, quiz.Text("X"), nil); got != 2 {
		t.Errorf("NextStepIndex(1) = %d, want 2", got)
	}
	if got := NextStepIndex(def, 2, quiz.Text("X"), nil); got != Complete {
		t.Errorf("NextStepIndex(last) = %d, want Complete", got)
	}
}

func TestNextStepIndex_InvalidCurrentIndex(t *testing.T) {
	def := &quiz.QuizDefinition{Steps: stepList("s1")}
	for _, idx := range []int{-1, 1, 99} {
		if got := NextStepIndex(def, idx, quiz.Text("X"), nil); got != Complete {
			t.Errorf("NextStepIndex(%d) = %d, want Complete", idx, got)
		}
	}
	if got := NextStepIndex(nil, 0, quiz.Text("X"), nil); got != Complete {
		t.Errorf("nil definition = %d, want Complete", got)
	}
}

func TestNextStepIndex_SkipsFlaggedSteps(t *testing.T) {
	def := &quiz.QuizDefinition{Steps: stepList("s1", "s2", "s3")}
	def.Steps[1].ShouldSkip = true

	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != 2 {
		t.Errorf("NextStepIndex = %d, want 2", got)
	}
}

func TestNextStepIndex_AllRemainingSkipped(t *testing.T) {
	def := &quiz.QuizDefinition{Steps: stepList("s1", "s2", "s3")}
	def.Steps[1].ShouldSkip = true
	def.Steps[2].ShouldSkip = true

	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != Complete {
		t.Errorf("NextStepIndex = %d, want Complete", got)
	}
}

func TestNextStepIndex_FlowRuleJump(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2", "s3"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1", Option: &quiz.Option{Text: "X"}},
				To: quiz.FlowTarget{QuestionID: "s3"}},
		},
	}

	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != 2 {
		t.Errorf("matching rule: got %d, want 2", got)
	}
	// A non-matching answer falls back to sequential order.
	if got := NextStepIndex(def, 0, quiz.Text("Y"), nil); got != 1 {
		t.Errorf("non-matching rule: got %d, want 1", got)
	}
}

func TestNextStepIndex_OptionlessRuleMatchesAnyAnswer(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2", "s3"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1"}, To: quiz.FlowTarget{QuestionID: "s3"}},
		},
	}
	if got := NextStepIndex(def, 0, quiz.Text("whatever"), nil); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestNextStepIndex_MultiSelectContainment(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2", "s3"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1", Option: &quiz.Option{Text: "X"}},
				To: quiz.FlowTarget{QuestionID: "s3"}},
		},
	}

	if got := NextStepIndex(def, 0, quiz.List("Y", "X"), nil); got != 2 {
		t.Errorf("containment match: got %d, want 2", got)
	}
	if got := NextStepIndex(def, 0, quiz.List("Y"), nil); got != 1 {
		t.Errorf("no containment: got %d, want 1", got)
	}
}

func TestNextStepIndex_DanglingRuleTargetFallsThrough(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1", Option: &quiz.Option{Text: "X"}},
				To: quiz.FlowTarget{QuestionID: "ghost"}},
		},
	}
	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != 1 {
		t.Errorf("got %d, want sequential 1", got)
	}
}

func TestNextStepIndex_FirstMatchingRuleWins(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2", "s3", "s4"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1", Option: &quiz.Option{Text: "X"}},
				To: quiz.FlowTarget{QuestionID: "s3"}},
			{From: quiz.FlowEndpoint{QuestionID: "s1", Option: &quiz.Option{Text: "X"}},
				To: quiz.FlowTarget{QuestionID: "s4"}},
		},
	}
	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != 2 {
		t.Errorf("got %d, want first rule's target 2", got)
	}
}

func TestNextStepIndex_FlowTargetThenSkipWalk(t *testing.T) {
	def := &quiz.QuizDefinition{
		Steps: stepList("s1", "s2", "s3", "s4"),
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "s1"}, To: quiz.FlowTarget{QuestionID: "s3"}},
		},
	}
	def.Steps[2].ShouldSkip = true

	if got := NextStepIndex(def, 0, quiz.Text("X"), nil); got != 3 {
		t.Errorf("got %d, want 3 (skip walk past flow target)", got)
	}
}

func TestFirstStepIndex(t *testing.T) {
	def := &quiz.QuizDefinition{Steps: stepList("s1", "s2", "s3")}
	if got := FirstStepIndex(def); got != 0 {
		t.Errorf("FirstStepIndex = %d, want 0", got)
	}

	def.Steps[0].ShouldSkip = true
	def.Steps[1].ShouldSkip = true
	if got := FirstStepIndex(def); got != 2 {
		t.Errorf("FirstStepIndex with leading skips = %d, want 2", got)
	}

	def.Steps[2].ShouldSkip = true
	if got := FirstStepIndex(def); got != Complete {
		t.Errorf("FirstStepIndex all skipped = %d, want Complete", got)
	}

	if got := FirstStepIndex(nil); got != Complete {
		t.Errorf("FirstStepIndex(nil) = %d, want Complete", got)
	}
}
