package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON quiz document, validating its shape against the
// definition schema first. Shape violations are caller bugs and fail fast;
// content-level anomalies (dangling flow targets, malformed node ids) are
// tolerated here and surfaced only by Lint.
func Parse(data []byte) (*QuizDefinition, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quiz document: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	var def QuizDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode quiz document: %w", err)
	}
	return &def, nil
}

// ParseYAML decodes a YAML quiz document by rendering it to the canonical
// JSON shape and running it through Parse, so YAML and JSON quizzes get
// identical validation.
func ParseYAML(data []byte) (*QuizDefinition, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quiz YAML: %w", err)
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert quiz YAML: %w", err)
	}
	return Parse(jsonBytes)
}

// Load reads a quiz definition from disk, dispatching on file extension
// (.yaml/.yml for YAML, everything else JSON).
func Load(path string) (*QuizDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}
