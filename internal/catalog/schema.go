package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// document schemas for the embedded catalog files. Structural constraints
// live here; cross-record invariants are enforced in validate.go.

var questionsSchema = &documentSchema{
	Name: "quiz-questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "active", "questionText", "options", "order"},
			"properties": map[string]any{
				"id":           map[string]any{"type": "string", "minLength": 1},
				"active":       map[string]any{"type": "boolean"},
				"questionType": map[string]any{"type": "string"},
				"questionText": map[string]any{"type": "string", "minLength": 1},
				"order":        map[string]any{"type": "integer"},
				"options": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"optionId", "optionText"},
						"properties": map[string]any{
							"optionId":        map[string]any{"type": "string", "minLength": 1},
							"optionText":      map[string]any{"type": "string", "minLength": 1},
							"optionAlignment": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

var typesSchema = &documentSchema{
	Name: "personality-types",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "shortDescription"},
			"properties": map[string]any{
				"id":               map[string]any{"type": "string", "minLength": 1},
				"title":            map[string]any{"type": "string", "minLength": 1},
				"shortDescription": map[string]any{"type": "string"},
				"superpowers":      map[string]any{"type": "string"},
				"workStyle":        map[string]any{"type": "string"},
				"personalGoals":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"studyTips":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"relationshipTips": map[string]any{"type": "string"},
			},
		},
	},
}

// documentSchema pairs a schema name with its JSON Schema definition.
type documentSchema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument validates raw JSON against the given document schema.
func validateDocument(schema *documentSchema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *documentSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	compilerURL := fmt.Sprintf("schema://%s.json", schema.Name)
	compilerObj := jsonschema.NewCompiler()
	if err := compilerObj.AddResource(compilerURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := compilerObj.Compile(compilerURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
