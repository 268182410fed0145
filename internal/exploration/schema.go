package exploration

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// lessonSchema is the JSON schema every lesson document must satisfy
// before deserialization is attempted.
var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                 map[string]any{"type": "string", "minLength": 1},
		"version":            map[string]any{"type": "integer", "minimum": 1},
		"title":              map[string]any{"type": "string", "minLength": 1},
		"initial_state_name": map[string]any{"type": "string", "minLength": 1},
		"states": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content": map[string]any{"type": "string"},
					"interaction": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id": map[string]any{"type": "string", "minLength": 1},
							"customization_args": map[string]any{
								"type":                 "object",
								"additionalProperties": map[string]any{"type": "string"},
							},
							"answer_groups": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"rules": map[string]any{
											"type":     "array",
											"minItems": 1,
											"items": map[string]any{
												"type": "object",
												"properties": map[string]any{
													"type":  map[string]any{"type": "string", "minLength": 1},
													"input": map[string]any{"type": "string"},
												},
												"required":             []any{"type", "input"},
												"additionalProperties": false,
											},
										},
										"outcome": outcomeSchema,
									},
									"required":             []any{"rules", "outcome"},
									"additionalProperties": false,
								},
							},
							"default_outcome": outcomeSchema,
							"hints": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"text": map[string]any{"type": "string", "minLength": 1},
									},
									"required":             []any{"text"},
									"additionalProperties": false,
								},
							},
							"solution": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"correct_answer": map[string]any{"type": "string", "minLength": 1},
									"explanation":    map[string]any{"type": "string"},
								},
								"required":             []any{"correct_answer"},
								"additionalProperties": false,
							},
						},
						"required":             []any{"id", "default_outcome"},
						"additionalProperties": false,
					},
					"linked_skill_id": map[string]any{"type": "string"},
				},
				"required":             []any{"content", "interaction"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "version", "title", "initial_state_name", "states"},
	"additionalProperties": false,
}

var outcomeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dest":                map[string]any{"type": "string"},
		"feedback":            map[string]any{"type": "string"},
		"labelled_as_correct": map[string]any{"type": "boolean"},
	},
	"required":             []any{"dest"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledLessonSchema compiles the lesson schema once and caches it.
func compiledLessonSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(lessonSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal lesson schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse lesson schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateLessonJSON checks raw lesson bytes against the lesson schema.
func validateLessonJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledLessonSchema()
	if err != nil {
		return fmt.Errorf("compile lesson schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
