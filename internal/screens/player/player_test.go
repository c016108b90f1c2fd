package player

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizflow/internal/navigator"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	responseEvents       []store.ResponseEventData
	answerEvents         []store.AnswerEventData
	recommendationEvents []store.RecommendationEventData
}

func (m *mockEventRepo) AppendResponseEvent(_ context.Context, data store.ResponseEventData) error {
	m.responseEvents = append(m.responseEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendRecommendationEvent(_ context.Context, data store.RecommendationEventData) error {
	m.recommendationEvents = append(m.recommendationEvents, data)
	return nil
}
func (m *mockEventRepo) ResponseAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryResponseSummaries(_ context.Context, _ store.QueryOpts) ([]store.ResponseSummary, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func twoStepQuiz() *quiz.QuizDefinition {
	return &quiz.QuizDefinition{
		Slug:  "test-quiz",
		Title: "Test Quiz",
		Steps: []quiz.Step{
			{ID: "q1", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Title:   "Pick one",
				Options: []quiz.Option{{Text: "Alpha"}, {Text: "Beta"}}},
			{ID: "q2", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Title:   "Pick again",
				Options: []quiz.Option{{Text: "Yes"}, {Text: "No"}}},
		},
	}
}

// drain runs cmds until no more messages are produced, feeding each message
// back into the screen. Returns the final screen.
func drain(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return s
		}
		if _, ok := msg.(router.PushScreenMsg); ok {
			return s
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				s = drain(t, s, c)
			}
			return s
		}
		s, cmd = s.Update(msg)
	}
	return s
}

func TestAnswerAdvancesToNextStep(t *testing.T) {
	repo := &mockEventRepo{}
	p := New(twoStepQuiz(), repo)

	if p.current != 0 {
		t.Fatalf("initial step = %d, want 0", p.current)
	}

	// Move to the second option and select it.
	p.Update(specialKey(tea.KeyDown))
	s, _ := p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)

	if p.current != 1 {
		t.Errorf("step after answer = %d, want 1", p.current)
	}
	if got := p.answers["q1"]; got.Str() != "Beta" {
		t.Errorf("recorded answer = %q, want Beta", got.Str())
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	if repo.answerEvents[0].StepID != "q1" {
		t.Errorf("answer event step = %q, want q1", repo.answerEvents[0].StepID)
	}
	if repo.answerEvents[0].AnswerJSON != `"Beta"` {
		t.Errorf("answer event json = %q", repo.answerEvents[0].AnswerJSON)
	}
}

func TestFlowRuleOverridesOrder(t *testing.T) {
	def := &quiz.QuizDefinition{
		Slug:  "branching",
		Title: "Branching",
		Steps: []quiz.Step{
			{ID: "q1", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Options: []quiz.Option{{Text: "Skip ahead"}, {Text: "Continue"}}},
			{ID: "q2", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Options: []quiz.Option{{Text: "Yes"}}},
			{ID: "q3", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Options: []quiz.Option{{Text: "Yes"}}},
		},
		Flow: []quiz.FlowRule{
			{From: quiz.FlowEndpoint{QuestionID: "q1", Option: &quiz.Option{Text: "Skip ahead"}},
				To: quiz.FlowTarget{QuestionID: "q3"}},
		},
	}

	p := New(def, nil)
	s, _ := p.Update(specialKey(tea.KeyEnter)) // first option selected
	p = s.(*PlayerScreen)

	if p.current != 2 {
		t.Errorf("step after flow jump = %d, want 2", p.current)
	}
}

func TestMultiSelectStep(t *testing.T) {
	def := &quiz.QuizDefinition{
		Slug:  "multi",
		Title: "Multi",
		Steps: []quiz.Step{
			{ID: "q1", StepType: quiz.StepQuestion, QuestionType: quiz.MultipleChoice,
				Options: []quiz.Option{{Text: "A"}, {Text: "B"}, {Text: "C"}}},
			{ID: "q2", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Options: []quiz.Option{{Text: "Done"}}},
		},
	}

	repo := &mockEventRepo{}
	p := New(def, repo)

	// Check A, move down, check B, submit.
	p.Update(keyPress(' '))
	p.Update(specialKey(tea.KeyDown))
	p.Update(keyPress(' '))
	s, _ := p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)

	got := p.answers["q1"].Strings()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("multi-select answer = %v, want [A B]", got)
	}
	if p.current != 1 {
		t.Errorf("step = %d, want 1", p.current)
	}
}

func TestEmptyMultiSelectDoesNotAdvance(t *testing.T) {
	def := &quiz.QuizDefinition{
		Slug:  "multi",
		Title: "Multi",
		Steps: []quiz.Step{
			{ID: "q1", StepType: quiz.StepQuestion, QuestionType: quiz.MultipleChoice,
				Options: []quiz.Option{{Text: "A"}}},
		},
	}

	p := New(def, nil)
	p.Update(specialKey(tea.KeyEnter))

	if p.current != 0 {
		t.Errorf("step = %d, want 0 (nothing checked yet)", p.current)
	}
	if len(p.answers) != 0 {
		t.Errorf("answers recorded = %d, want 0", len(p.answers))
	}
}

func TestCompletionRecordsEvents(t *testing.T) {
	def := twoStepQuiz()
	def.Questions = []quiz.Question{
		{ID: "q2", Text: "Pick again", Options: []quiz.Option{{Text: "Yes"}, {Text: "No"}}},
	}
	def.Results = []quiz.Result{{ID: "1", Title: "Starter Kit"}}
	def.Logic = &quiz.LogicGraph{
		Nodes: []quiz.Node{{ID: "question-q2"}, {ID: "result-1-abc"}},
		Edges: []quiz.Edge{
			{ID: "e1", Source: "question-q2", Target: "result-1-abc", SourceHandle: "option-0"},
		},
	}

	repo := &mockEventRepo{}
	p := New(def, repo)

	// Answer both steps with their first option.
	s, cmd := p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)
	s, cmd = p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)

	drain(t, p, cmd)

	if len(repo.recommendationEvents) != 1 {
		t.Fatalf("recommendation events = %d, want 1", len(repo.recommendationEvents))
	}
	if ids := repo.recommendationEvents[0].ResultIDs; len(ids) != 1 || ids[0] != "1" {
		t.Errorf("recommended ids = %v, want [1]", ids)
	}

	var complete *store.ResponseEventData
	for i := range repo.responseEvents {
		if repo.responseEvents[i].Action == store.ActionComplete {
			complete = &repo.responseEvents[i]
		}
	}
	if complete == nil {
		t.Fatal("no complete event recorded")
	}
	if complete.AnswersRecorded != 2 {
		t.Errorf("answers recorded = %d, want 2", complete.AnswersRecorded)
	}
}

func TestEscShowsQuitConfirmAndAbandonRecords(t *testing.T) {
	repo := &mockEventRepo{}
	p := New(twoStepQuiz(), repo)

	p.Update(specialKey(tea.KeyEscape))
	if !p.showingQuitConfirm {
		t.Fatal("expected quit confirm after esc")
	}

	// n cancels.
	p.Update(keyPress('n'))
	if p.showingQuitConfirm {
		t.Fatal("expected quit confirm dismissed after n")
	}

	// esc then y abandons.
	p.Update(specialKey(tea.KeyEscape))
	p.Update(keyPress('y'))

	var abandoned bool
	for _, e := range repo.responseEvents {
		if e.Action == store.ActionAbandon {
			abandoned = true
		}
	}
	if !abandoned {
		t.Error("expected abandon event after confirming quit")
	}
}

func TestSkippedStepsNeverShown(t *testing.T) {
	def := twoStepQuiz()
	def.Steps[0].ShouldSkip = true

	p := New(def, nil)
	if p.current != 1 {
		t.Errorf("initial step = %d, want 1 (first step skipped)", p.current)
	}
}

func TestComponentStepAdvancesOnEnter(t *testing.T) {
	def := &quiz.QuizDefinition{
		Slug:  "intro",
		Title: "Intro",
		Steps: []quiz.Step{
			{ID: "welcome", StepType: quiz.StepComponent, Title: "Welcome"},
			{ID: "q1", StepType: quiz.StepQuestion, QuestionType: quiz.SingleChoice,
				Options: []quiz.Option{{Text: "Ok"}}},
		},
	}

	p := New(def, nil)
	s, _ := p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)

	if p.current != 1 {
		t.Errorf("step = %d, want 1", p.current)
	}
	if !p.answers["welcome"].Truthy() {
		t.Error("expected viewed marker for component step")
	}
}

func TestProgress(t *testing.T) {
	p := New(twoStepQuiz(), nil)
	step, total := p.Progress()
	if step != 1 || total != 2 {
		t.Errorf("progress = %d/%d, want 1/2", step, total)
	}

	s, _ := p.Update(specialKey(tea.KeyEnter))
	p = s.(*PlayerScreen)
	step, total = p.Progress()
	if step != 2 || total != 2 {
		t.Errorf("progress = %d/%d, want 2/2", step, total)
	}
}

func TestFinishedQuizReportsComplete(t *testing.T) {
	p := New(&quiz.QuizDefinition{Slug: "empty", Title: "Empty"}, nil)
	if p.current != navigator.Complete {
		t.Errorf("current = %d, want Complete for an empty quiz", p.current)
	}
}

func TestQuitConfirmButtons(t *testing.T) {
	repo := &mockEventRepo{}
	p := New(twoStepQuiz(), repo)

	// "No" is focused by default; enter keeps the quiz running.
	p.Update(specialKey(tea.KeyEscape))
	if !p.quitNo.Active || p.quitYes.Active {
		t.Fatal("expected the No button focused by default")
	}
	p.Update(specialKey(tea.KeyEnter))
	if p.showingQuitConfirm {
		t.Fatal("expected quit confirm dismissed by the No button")
	}
	if len(repo.responseEvents) != 0 {
		t.Fatalf("response events = %d, want 0 after staying", len(repo.responseEvents))
	}

	// Arrow over to "Yes" and confirm.
	p.Update(specialKey(tea.KeyEscape))
	p.Update(specialKey(tea.KeyRight))
	if !p.quitYes.Active || p.quitNo.Active {
		t.Fatal("expected the Yes button focused after right arrow")
	}
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command from the Yes button")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	var abandoned bool
	for _, e := range repo.responseEvents {
		if e.Action == store.ActionAbandon {
			abandoned = true
		}
	}
	if !abandoned {
		t.Error("expected abandon event from the Yes button")
	}
}
