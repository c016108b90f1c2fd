package quiz

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuiz = `{
  "slug": "hair-loss",
  "title": "Hair Loss Assessment",
  "steps": [
    {"id": "intro", "stepType": "component"},
    {"id": "q1", "stepType": "question", "questionType": "single-choice",
     "options": [{"text": "Yes"}, {"text": "No"}]},
    {"id": "contact", "stepType": "form", "formInputs": [{"name": "email"}]}
  ],
  "flow": [
    {"from": {"questionId": "q1", "option": {"text": "No"}}, "to": {"questionId": "contact"}}
  ],
  "questions": [
    {"id": "q1", "options": [{"text": "Yes"}, {"text": "No"}]}
  ],
  "results": [
    {"id": 10, "title": "Topical treatment"}
  ],
  "logicResults": {
    "nodes": [{"id": "question-q1"}, {"id": "result-10-a"}],
    "edges": [{"source": "question-q1", "sourceHandle": "option-0", "target": "result-10-a"}]
  }
}`

func TestParse_Sample(t *testing.T) {
	def, err := Parse([]byte(sampleQuiz))
	require.NoError(t, err)

	assert.Equal(t, "hair-loss", def.Slug)
	assert.Len(t, def.Steps, 3)
	assert.Equal(t, StepQuestion, def.Steps[1].StepType)
	assert.Equal(t, SingleChoice, def.Steps[1].QuestionType)
	require.Len(t, def.Flow, 1)
	assert.Equal(t, "No", def.Flow[0].From.Option.Text)
	require.Len(t, def.Results, 1)
	assert.Equal(t, ResultID("10"), def.Results[0].ID)
	require.NotNil(t, def.Logic)
	assert.Len(t, def.Logic.Edges, 1)
}

func TestParse_RejectsBadShape(t *testing.T) {
	cases := map[string]string{
		"not json":        `steps:`,
		"missing steps":   `{"title": "x"}`,
		"steps not array": `{"steps": {}}`,
		"bad step type":   `{"steps": [{"id": "s1", "stepType": "video"}]}`,
		"step without id": `{"steps": [{"stepType": "question"}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML_MatchesJSON(t *testing.T) {
	yamlDoc := `
slug: hair-loss
steps:
  - id: q1
    stepType: question
    questionType: single-choice
    options:
      - text: "Yes"
      - text: "No"
results:
  - id: 10
    title: Topical treatment
`
	def, err := ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, "hair-loss", def.Slug)
	require.Len(t, def.Steps, 1)
	assert.Equal(t, "Yes", def.Steps[0].Options[0].Text)
	assert.Equal(t, ResultID("10"), def.Results[0].ID)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "quiz.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleQuiz), 0o644))
	def, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "hair-loss", def.Slug)

	yamlPath := filepath.Join(dir, "quiz.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("steps:\n  - id: s1\n    stepType: component\n"), 0o644))
	def, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, def.Steps, 1)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestResultID_NumberAndString(t *testing.T) {
	var r ResultID
	require.NoError(t, json.Unmarshal([]byte(`10`), &r))
	assert.Equal(t, ResultID("10"), r)

	require.NoError(t, json.Unmarshal([]byte(`"10"`), &r))
	assert.Equal(t, ResultID("10"), r)

	require.NoError(t, json.Unmarshal([]byte(`"sku-7"`), &r))
	assert.Equal(t, ResultID("sku-7"), r)

	// Numeric ids marshal back as numbers.
	out, err := json.Marshal(ResultID("10"))
	require.NoError(t, err)
	assert.Equal(t, "10", string(out))

	out, err = json.Marshal(ResultID("sku-7"))
	require.NoError(t, err)
	assert.Equal(t, `"sku-7"`, string(out))
}

func TestResultID_FractionalRoundTrip(t *testing.T) {
	var r ResultID
	require.NoError(t, json.Unmarshal([]byte(`10.5`), &r))
	assert.Equal(t, ResultID("10.5"), r)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "10.5", string(out))
}
