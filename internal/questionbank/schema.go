package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every content file must satisfy before
// it is decoded into typed questions. Validating up front keeps the
// decoder free of field-by-field presence checks.
var bankSchema = map[string]any{
	"type":     "object",
	"required": []any{"subject", "objective", "freeText"},
	"properties": map[string]any{
		"subject": map[string]any{"type": "string", "minLength": 1},
		"objective": map[string]any{
			"type":  "array",
			"items": objectiveSchema,
		},
		"freeText": map[string]any{
			"type":  "array",
			"items": freeTextSchema,
		},
	},
}

var questionCommon = map[string]any{
	"id":       map[string]any{"type": "string", "minLength": 1},
	"unit":     map[string]any{"type": "integer", "enum": []any{1, 2}},
	"topic":    map[string]any{"type": "string", "minLength": 1},
	"topicSlug": map[string]any{
		"type":    "string",
		"pattern": "^[a-z0-9]+(-[a-z0-9]+)*$",
	},
	"prompt":      map[string]any{"type": "string", "minLength": 1},
	"explanation": map[string]any{"type": "string"},
}

var objectiveSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "unit", "topic", "prompt", "options", "correctOptionIndex"},
	"properties": merge(questionCommon, map[string]any{
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": 4,
			"maxItems": 4,
		},
		"correctOptionIndex": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 3,
		},
	}),
}

var freeTextSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "unit", "topic", "prompt", "idealAnswer", "keywords"},
	"properties": merge(questionCommon, map[string]any{
		"idealAnswer": map[string]any{"type": "string", "minLength": 1},
		"keywords": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": 1,
		},
	}),
}

func merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBankJSON checks raw content bytes against the bank schema.
func validateBankJSON(raw []byte) error {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
