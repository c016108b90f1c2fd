package quiz

import "encoding/json"

// StepType categorizes a step in the linear quiz sequence.
type StepType string

const (
	StepQuestion  StepType = "question"
	StepForm      StepType = "form"
	StepComponent StepType = "component"
)

// QuestionType categorizes how a question step collects its answer.
type QuestionType string

const (
	SingleChoice   QuestionType = "single-choice"
	MultipleChoice QuestionType = "multiple-choice"
	DropdownList   QuestionType = "dropdown-list"
)

// QuizDefinition is the top-level document for one quiz. It is loaded once
// per quiz-taking session and treated as immutable input by every engine.
type QuizDefinition struct {
	Slug      string       `json:"slug,omitempty"`
	Title     string       `json:"title,omitempty"`
	Steps     []Step       `json:"steps"`
	Flow      []FlowRule   `json:"flow,omitempty"`
	Questions []Question   `json:"questions,omitempty"`
	Results   []Result     `json:"results,omitempty"`
	Logic     *LogicGraph  `json:"logicResults,omitempty"`
}

// Step is one screen in the linear quiz.
type Step struct {
	ID           string       `json:"id"`
	StepType     StepType     `json:"stepType"`
	QuestionType QuestionType `json:"questionType,omitempty"`
	Title        string       `json:"title,omitempty"`
	Options      []Option     `json:"options,omitempty"`
	FormInputs   []FormInput  `json:"formInputs,omitempty"`
	ShouldSkip   bool         `json:"shouldSkip,omitempty"`
}

// FormInput describes one required field of a form step.
type FormInput struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// Option is a selectable choice within a question. Position in the options
// slice is the canonical zero-based index referenced by edge handles; the
// slice must never be resorted.
type Option struct {
	Text string `json:"text"`
}

// FlowRule is a conditional edge in the override flow table: if the step
// with id From.QuestionID received an answer equal to From.Option.Text
// (or any answer, when Option is nil), navigate to To.QuestionID.
// When several rules match the same answer, the first in document order wins.
type FlowRule struct {
	From FlowEndpoint `json:"from"`
	To   FlowTarget   `json:"to"`
}

// FlowEndpoint identifies the source side of a flow rule.
type FlowEndpoint struct {
	QuestionID string  `json:"questionId"`
	Option     *Option `json:"option,omitempty"`
}

// FlowTarget identifies the destination step of a flow rule.
type FlowTarget struct {
	QuestionID string `json:"questionId"`
}

// Question is the subset of a step consumed by the recommendation resolver.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text,omitempty"`
	Options []Option `json:"options"`
}

// LogicGraph is the {nodes, edges} structure expressing
// question→option→(question|result) branching for recommendation purposes.
// It is independent of the linear step/flow model.
type LogicGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a vertex of the logic graph. The engines only consult node ids as
// they appear on edges; Data is carried for round-tripping.
type Node struct {
	ID   string          `json:"id"`
	Type string          `json:"type,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Edge is a directed connection in the logic graph. Source and Target carry
// composite node ids ("question-<id>" or "result-<id>-<suffix>").
// SourceHandle, when present, is "option-<N>" and restricts the edge to the
// option at canonical index N; an edge without a handle is unconditional.
type Edge struct {
	ID           string `json:"id,omitempty"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
}

// Result is a terminal recommendation record. Everything beyond ID is opaque
// payload: the resolver returns reached Result records unmodified, in the
// order they were first discovered.
type Result struct {
	ID          ResultID     `json:"id"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	RedirectURL string       `json:"redirectUrl,omitempty"`
	Products    []ProductRef `json:"products,omitempty"`
	Addons      []ProductRef `json:"addons,omitempty"`
}

// ProductRef points at a product in the storefront catalog.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
