package aiquiz_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/saulo-duarte/questoes-lambda/internal/aiquiz"
)

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valida", `{"question":"Q","options":["a","b","c","d"],"answer":3,"explanation":"E"}`, false},
		{"tres alternativas", `{"question":"Q","options":["a","b","c"],"answer":0,"explanation":"E"}`, true},
		{"indice fora do intervalo", `{"question":"Q","options":["a","b","c","d"],"answer":4,"explanation":"E"}`, true},
		{"indice fracionario", `{"question":"Q","options":["a","b","c","d"],"answer":1.5,"explanation":"E"}`, true},
		{"sem explicacao", `{"question":"Q","options":["a","b","c","d"],"answer":1}`, true},
		{"enunciado vazio", `{"question":"","options":["a","b","c","d"],"answer":1,"explanation":"E"}`, true},
		{"array", `[{"question":"Q"}]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := aiquiz.ValidateShape(json.RawMessage(tt.raw))
			if tt.wantErr {
				var shapeErr *aiquiz.InvalidShapeError
				if !errors.As(err, &shapeErr) {
					t.Fatalf("esperado *InvalidShapeError, recebido %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateShape falhou: %v", err)
			}
		})
	}
}
