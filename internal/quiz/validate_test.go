package quiz

import (
	"strings"
	"testing"
)

func validDefinition() *QuizDefinition {
	return &QuizDefinition{
		Steps: []Step{
			{ID: "q1", StepType: StepQuestion, QuestionType: SingleChoice,
				Options: []Option{{Text: "Yes"}, {Text: "No"}}},
			{ID: "done", StepType: StepComponent},
		},
		Flow: []FlowRule{
			{From: FlowEndpoint{QuestionID: "q1", Option: &Option{Text: "No"}},
				To: FlowTarget{QuestionID: "done"}},
		},
		Questions: []Question{
			{ID: "q1", Options: []Option{{Text: "Yes"}, {Text: "No"}}},
		},
		Results: []Result{{ID: "10"}},
		Logic: &LogicGraph{
			Nodes: []Node{{ID: "question-q1"}, {ID: "result-10-a"}},
			Edges: []Edge{
				{Source: "question-q1", SourceHandle: "option-0", Target: "result-10-a"},
			},
		},
	}
}

func TestLint_CleanDefinitionPasses(t *testing.T) {
	if err := Lint(validDefinition()); err != nil {
		t.Fatalf("clean definition failed lint: %v", err)
	}
}

func TestLint_Findings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*QuizDefinition)
		want   string
	}{
		{
			"duplicate step id",
			func(d *QuizDefinition) { d.Steps = append(d.Steps, Step{ID: "q1", StepType: StepComponent}) },
			"duplicate step id",
		},
		{
			"question without options",
			func(d *QuizDefinition) { d.Steps[0].Options = nil },
			"has no options",
		},
		{
			"dangling flow target",
			func(d *QuizDefinition) { d.Flow[0].To.QuestionID = "ghost" },
			"unknown target step",
		},
		{
			"shadowed flow rule",
			func(d *QuizDefinition) { d.Flow = append(d.Flow, d.Flow[0]) },
			"shadowed",
		},
		{
			"optionless rule shadows later option rule",
			func(d *QuizDefinition) {
				d.Flow = []FlowRule{
					{From: FlowEndpoint{QuestionID: "q1"}, To: FlowTarget{QuestionID: "done"}},
					{From: FlowEndpoint{QuestionID: "q1", Option: &Option{Text: "No"}},
						To: FlowTarget{QuestionID: "done"}},
				}
			},
			"shadowed by unconditional rule",
		},
		{
			"duplicate option text",
			func(d *QuizDefinition) { d.Questions[0].Options[1].Text = "Yes" },
			"repeats option text",
		},
		{
			"malformed handle",
			func(d *QuizDefinition) { d.Logic.Edges[0].SourceHandle = "option-x" },
			"malformed source handle",
		},
		{
			"handle out of range",
			func(d *QuizDefinition) { d.Logic.Edges[0].SourceHandle = "option-5" },
			"exceeds",
		},
		{
			"unknown result reference",
			func(d *QuizDefinition) { d.Logic.Edges[0].Target = "result-99-a" },
			"unknown result",
		},
		{
			"unparseable result id",
			func(d *QuizDefinition) { d.Logic.Edges[0].Target = "result-x-y" },
			"no numeric result id",
		},
		{
			"unrecognized node id",
			func(d *QuizDefinition) { d.Logic.Edges[0].Source = "banner-1" },
			"unrecognized source",
		},
		{
			"cycle",
			func(d *QuizDefinition) {
				d.Questions = append(d.Questions, Question{ID: "q2", Options: []Option{{Text: "A"}}})
				d.Logic.Nodes = append(d.Logic.Nodes, Node{ID: "question-q2"})
				d.Logic.Edges = []Edge{
					{Source: "question-q1", SourceHandle: "option-0", Target: "question-q2"},
					{Source: "question-q2", SourceHandle: "option-0", Target: "question-q1"},
				}
			},
			"cycle detected",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(def)
			err := Lint(def)
			if err == nil {
				t.Fatal("expected lint error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error should mention %q, got: %v", tc.want, err)
			}
		})
	}
}

func TestLint_NilDefinition(t *testing.T) {
	if err := Lint(nil); err == nil {
		t.Fatal("expected error for nil definition")
	}
}
