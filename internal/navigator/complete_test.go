package navigator

import (
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func TestIsAnswerComplete(t *testing.T) {
	single := quiz.Step{ID: "q", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice}
	dropdown := quiz.Step{ID: "q", StepType: quiz.StepQuestion, QuestionType: quiz.DropdownList}
	multi := quiz.Step{ID: "q", StepType: quiz.StepQuestion, QuestionType: quiz.MultipleChoice}
	form := quiz.Step{ID: "f", StepType: quiz.StepForm,
		FormInputs: []quiz.FormInput{{Name: "email"}, {Name: "phone"}}}
	component := quiz.Step{ID: "c", StepType: quiz.StepComponent}

	cases := []struct {
		name   string
		step   quiz.Step
		answer quiz.Answer
		want   bool
	}{
		{"single with text", single, quiz.Text("Yes"), true},
		{"single empty", single, quiz.Text(""), false},
		{"single with list", single, quiz.List("Yes"), false},
		{"single absent", single, quiz.Answer{}, false},

		{"dropdown with text", dropdown, quiz.Text("Option A"), true},
		{"dropdown with number", dropdown, quiz.Number(1), false},

		{"multi with selection", multi, quiz.List("A", "B"), true},
		{"multi empty list", multi, quiz.List(), false},
		{"multi with string", multi, quiz.Text("A"), false},

		{"form all filled", form, quiz.Object(map[string]quiz.Answer{
			"email": quiz.Text("a@b.c"), "phone": quiz.Text("555")}), true},
		{"form missing field", form, quiz.Object(map[string]quiz.Answer{
			"email": quiz.Text("a@b.c")}), false},
		{"form empty value", form, quiz.Object(map[string]quiz.Answer{
			"email": quiz.Text(""), "phone": quiz.Text("555")}), false},
		{"form non-object", form, quiz.Text("a@b.c"), false},

		{"component viewed", component, quiz.Text("viewed"), true},
		{"component bool", component, quiz.Bool(true), true},
		{"component absent", component, quiz.Answer{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAnswerComplete(tc.step, tc.answer); got != tc.want {
				t.Errorf("IsAnswerComplete = %v, want %v", got, tc.want)
			}
		})
	}
}
