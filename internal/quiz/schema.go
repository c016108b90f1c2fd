package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// definitionSchema is the JSON schema every quiz document must satisfy before
// it is handed to the engines. It pins the shapes the engines rely on (steps
// is an array, edges carry source/target strings) and leaves result payloads
// open: those are opaque to the engines.
var definitionSchema = map[string]any{
	"type":     "object",
	"required": []any{"steps"},
	"properties": map[string]any{
		"slug":  map[string]any{"type": "string"},
		"title": map[string]any{"type": "string"},
		"steps": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "stepType"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"stepType": map[string]any{"enum": []any{"question", "form", "component"}},
					"questionType": map[string]any{
						"enum": []any{"single-choice", "multiple-choice", "dropdown-list"},
					},
					"options": map[string]any{
						"type":  "array",
						"items": optionSchema,
					},
					"formInputs": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"name"},
							"properties": map[string]any{
								"name":  map[string]any{"type": "string", "minLength": 1},
								"label": map[string]any{"type": "string"},
							},
						},
					},
					"shouldSkip": map[string]any{"type": "boolean"},
				},
			},
		},
		"flow": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"from", "to"},
				"properties": map[string]any{
					"from": map[string]any{
						"type":     "object",
						"required": []any{"questionId"},
						"properties": map[string]any{
							"questionId": map[string]any{"type": "string", "minLength": 1},
							"option":     optionSchema,
						},
					},
					"to": map[string]any{
						"type":     "object",
						"required": []any{"questionId"},
						"properties": map[string]any{
							"questionId": map[string]any{"type": "string", "minLength": 1},
						},
					},
				},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "options"},
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"text":    map[string]any{"type": "string"},
					"options": map[string]any{"type": "array", "items": optionSchema},
				},
			},
		},
		"results": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id"},
				"properties": map[string]any{
					"id": map[string]any{"type": []any{"integer", "string"}},
				},
			},
		},
		"logicResults": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"nodes": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id"},
						"properties": map[string]any{
							"id": map[string]any{"type": "string", "minLength": 1},
						},
					},
				},
				"edges": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"source", "target"},
						"properties": map[string]any{
							"source":       map[string]any{"type": "string", "minLength": 1},
							"target":       map[string]any{"type": "string", "minLength": 1},
							"sourceHandle": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

var optionSchema = map[string]any{
	"type":     "object",
	"required": []any{"text"},
	"properties": map[string]any{
		"text": map[string]any{"type": "string"},
	},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// compiledDefinitionSchema compiles the document schema once per process.
func compiledDefinitionSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(definitionSchema)
		if err != nil {
			compileSchemaError = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaError = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-definition.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaError
}

// ValidateDocument checks a parsed quiz document against the definition
// schema. doc must be a plain decoded JSON value (maps and slices).
func ValidateDocument(doc any) error {
	schema, err := compiledDefinitionSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("quiz document rejected: %w", err)
	}
	return nil
}
