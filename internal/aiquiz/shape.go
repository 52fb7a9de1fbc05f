package aiquiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "https://questoes.local/quiz-question.json"

const questionSchema = `{
	"type": "object",
	"required": ["question", "options", "answer", "explanation"],
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {
			"type": "array",
			"minItems": 4,
			"maxItems": 4,
			"items": {"type": "string"}
		},
		"answer": {"type": "integer", "minimum": 0, "maximum": 3},
		"explanation": {"type": "string", "minLength": 1}
	}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func questionShape() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add question schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateShape checks parsed model output against the Question schema.
func ValidateShape(raw json.RawMessage) error {
	sch, err := questionShape()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &InvalidShapeError{Err: err}
	}
	if err := sch.Validate(inst); err != nil {
		return &InvalidShapeError{Err: err}
	}
	return nil
}
