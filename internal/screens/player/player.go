package player

import (
	"context"
	"encoding/json"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizflow/internal/navigator"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/resolver"
	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/screens/results"
	"github.com/abhisek/quizflow/internal/store"
	"github.com/abhisek/quizflow/internal/ui/components"
	"github.com/abhisek/quizflow/internal/ui/layout"
)

// PlayerScreen walks a respondent through a quiz one step at a time and
// records every answer as it lands.
type PlayerScreen struct {
	def        *quiz.QuizDefinition
	repo       store.EventRepo
	responseID string
	startTime  time.Time

	current   int
	stepsSeen int
	answers   map[string]quiz.Answer

	// component state for the current step, keyed off step type
	choice components.Choice
	multi  components.MultiSelect
	form   components.Form

	showingQuitConfirm bool
	quitYes            components.Button
	quitNo             components.Button
	finished           bool
	errMsg             string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a player for the given quiz. repo may be nil, in which case
// nothing is persisted.
func New(def *quiz.QuizDefinition, repo store.EventRepo) *PlayerScreen {
	p := &PlayerScreen{
		def:        def,
		repo:       repo,
		responseID: uuid.New().String(),
		startTime:  time.Now(),
		current:    navigator.FirstStepIndex(def),
		answers:    make(map[string]quiz.Answer),
	}
	if p.current != navigator.Complete {
		p.setupStep()
	}
	return p
}

func (p *PlayerScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{p.recordStart()}
	if p.current != navigator.Complete {
		if step := p.def.Steps[p.current]; step.StepType == quiz.StepForm {
			cmds = append(cmds, p.form.Init())
		}
	} else {
		// Every step is skipped: resolve immediately.
		cmds = append(cmds, func() tea.Msg { return quizDoneMsg{} })
	}
	return tea.Batch(cmds...)
}

func (p *PlayerScreen) Title() string {
	return p.def.Title
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	if p.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Y/N", Description: "Shortcut"},
		}
	}
	step := p.currentStep()
	if step == nil {
		return nil
	}
	switch step.StepType {
	case quiz.StepForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case quiz.StepQuestion:
		if step.QuestionType == quiz.MultipleChoice {
			return []layout.KeyHint{
				{Key: "Space", Description: "Toggle"},
				{Key: "Enter", Description: "Continue"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// Progress reports the one-based position of the current step and the total
// step count, for the header.
func (p *PlayerScreen) Progress() (step, total int) {
	if p.current == navigator.Complete {
		return len(p.def.Steps), len(p.def.Steps)
	}
	return p.current + 1, len(p.def.Steps)
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
		}
		return p, nil

	case quizDoneMsg:
		return p.handleDone()

	case resolvedMsg:
		return p.handleResolved(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p.forward(msg)
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.showingQuitConfirm {
		switch key {
		case "y", "Y":
			p.recordAbandon()
			return p, tea.Quit
		case "n", "N", "esc":
			p.showingQuitConfirm = false
			return p, nil
		case "left", "right", "tab":
			p.quitNo.Active, p.quitYes.Active = p.quitYes.Active, p.quitNo.Active
			return p, nil
		}
		var cmd tea.Cmd
		if p.quitYes.Active {
			p.quitYes, cmd = p.quitYes.Update(msg)
		} else {
			p.quitNo, cmd = p.quitNo.Update(msg)
		}
		return p, cmd
	}

	if key == "esc" {
		p.showQuitConfirm()
		return p, nil
	}

	step := p.currentStep()
	if step == nil || p.finished {
		return p, nil
	}

	// Component steps advance on enter, recording a "viewed" marker.
	if step.StepType != quiz.StepQuestion && step.StepType != quiz.StepForm {
		if key == "enter" {
			return p.submit(quiz.Text("viewed"))
		}
		return p, nil
	}

	return p.forward(msg)
}

// forward hands the message to the active step component and checks for
// submission.
func (p *PlayerScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	step := p.currentStep()
	if step == nil {
		return p, nil
	}

	var cmd tea.Cmd
	switch {
	case step.StepType == quiz.StepForm:
		p.form, cmd = p.form.Update(msg)
		if p.form.Submitted {
			fields := make(map[string]quiz.Answer)
			for name, v := range p.form.Values() {
				fields[name] = quiz.Text(v)
			}
			return p.submit(quiz.Object(fields))
		}

	case step.QuestionType == quiz.MultipleChoice:
		p.multi, cmd = p.multi.Update(msg)
		if p.multi.Submitted {
			return p.submit(quiz.List(p.multi.Values()...))
		}

	default:
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			return p.submit(quiz.Text(p.choice.Value()))
		}
	}

	return p, cmd
}

// submit records the answer for the current step and advances.
func (p *PlayerScreen) submit(answer quiz.Answer) (screen.Screen, tea.Cmd) {
	step := p.currentStep()
	if step == nil {
		return p, nil
	}
	if !navigator.IsAnswerComplete(*step, answer) {
		p.setupStep() // reset the component for another attempt
		return p, nil
	}

	p.answers[step.ID] = answer
	p.stepsSeen++
	p.recordAnswer(*step, p.current, answer)

	next := navigator.NextStepIndex(p.def, p.current, answer, p.answers)
	if next == navigator.Complete {
		p.current = navigator.Complete
		return p, func() tea.Msg { return quizDoneMsg{} }
	}

	p.current = next
	p.setupStep()

	var cmd tea.Cmd
	if p.def.Steps[p.current].StepType == quiz.StepForm {
		cmd = p.form.Init()
	}
	return p, cmd
}

func (p *PlayerScreen) handleDone() (screen.Screen, tea.Cmd) {
	p.finished = true
	def := p.def
	answers := p.answers
	return p, func() tea.Msg {
		recs, err := resolver.Resolve(def.Logic, def.Results, def.Questions, answers)
		if err != nil {
			// A quiz without a logic graph still completes, just with no
			// recommendations.
			recs = nil
		}
		return resolvedMsg{Results: recs}
	}
}

func (p *PlayerScreen) handleResolved(msg resolvedMsg) (screen.Screen, tea.Cmd) {
	p.recordComplete(msg.Results)
	return p, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(p.def.Title, msg.Results)}
	}
}

// showQuitConfirm raises the leave-quiz overlay with "No" focused.
func (p *PlayerScreen) showQuitConfirm() {
	p.showingQuitConfirm = true
	p.quitNo = components.NewButton("No, keep going", true, func() tea.Cmd {
		p.showingQuitConfirm = false
		return nil
	})
	p.quitYes = components.NewButton("Yes, leave", false, func() tea.Cmd {
		p.recordAbandon()
		return tea.Quit
	})
}

// setupStep prepares the input component for the current step.
func (p *PlayerScreen) setupStep() {
	step := p.currentStep()
	if step == nil {
		return
	}

	switch {
	case step.StepType == quiz.StepForm:
		fields := make([]components.FormField, 0, len(step.FormInputs))
		for _, in := range step.FormInputs {
			label := in.Label
			if label == "" {
				label = in.Name
			}
			fields = append(fields, components.FormField{
				Name:     in.Name,
				Label:    label,
				Required: true,
				Input:    components.NewTextInput("", false, 64),
			})
		}
		p.form = components.NewForm(fields)

	case step.StepType == quiz.StepQuestion && step.QuestionType == quiz.MultipleChoice:
		p.multi = components.NewMultiSelect(step.Title, optionTexts(step.Options))

	case step.StepType == quiz.StepQuestion:
		p.choice = components.NewChoice(step.Title, optionTexts(step.Options))
	}
}

func (p *PlayerScreen) currentStep() *quiz.Step {
	if p.current < 0 || p.current >= len(p.def.Steps) {
		return nil
	}
	return &p.def.Steps[p.current]
}

func optionTexts(opts []quiz.Option) []string {
	texts := make([]string, len(opts))
	for i, o := range opts {
		texts[i] = o.Text
	}
	return texts
}

// recordStart persists the response start event.
func (p *PlayerScreen) recordStart() tea.Cmd {
	if p.repo == nil {
		return nil
	}
	repo, id, slug := p.repo, p.responseID, p.def.Slug
	return func() tea.Msg {
		err := repo.AppendResponseEvent(context.Background(), store.ResponseEventData{
			ResponseID: id,
			QuizSlug:   slug,
			Action:     store.ActionStart,
		})
		return startedMsg{Err: err}
	}
}

func (p *PlayerScreen) recordAnswer(step quiz.Step, index int, answer quiz.Answer) {
	if p.repo == nil {
		return
	}
	raw, err := json.Marshal(answer)
	if err != nil {
		return
	}
	_ = p.repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		ResponseID: p.responseID,
		StepID:     step.ID,
		StepIndex:  index,
		StepType:   string(step.StepType),
		AnswerJSON: string(raw),
	})
}

func (p *PlayerScreen) recordComplete(recs []quiz.Result) {
	if p.repo == nil {
		return
	}
	ctx := context.Background()

	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = string(r.ID)
	}
	_ = p.repo.AppendRecommendationEvent(ctx, store.RecommendationEventData{
		ResponseID: p.responseID,
		ResultIDs:  ids,
	})
	_ = p.repo.AppendResponseEvent(ctx, store.ResponseEventData{
		ResponseID:      p.responseID,
		QuizSlug:        p.def.Slug,
		Action:          store.ActionComplete,
		StepsSeen:       p.stepsSeen,
		AnswersRecorded: len(p.answers),
		DurationSecs:    int(time.Since(p.startTime).Seconds()),
	})
}

func (p *PlayerScreen) recordAbandon() {
	if p.repo == nil {
		return
	}
	_ = p.repo.AppendResponseEvent(context.Background(), store.ResponseEventData{
		ResponseID:      p.responseID,
		QuizSlug:        p.def.Slug,
		Action:          store.ActionAbandon,
		StepsSeen:       p.stepsSeen,
		AnswersRecorded: len(p.answers),
		DurationSecs:    int(time.Since(p.startTime).Seconds()),
	})
}
