package aiquiz

import (
	"errors"
	"fmt"
)

var (
	ErrMethodNotAllowed      = errors.New("Method Not Allowed")
	ErrAPIKeyNotConfigured   = errors.New("API key not configured")
	ErrMissingFields         = errors.New("Missing required fields")
	ErrEmptyUpstreamResponse = errors.New("A API do Gemini retornou uma resposta vazia ou em formato inesperado.")
)

// UpstreamError is returned when Gemini answers with a non-2xx status. Body
// is kept for diagnostics and never written to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API responded with status %d", e.StatusCode)
}

// MalformedResponseError reports model text that is not valid JSON after the
// fences are stripped. Its message is the decoder's message, unchanged.
type MalformedResponseError struct {
	Text string
	Err  error
}

func (e *MalformedResponseError) Error() string { return e.Err.Error() }

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// InvalidShapeError is only produced when strict shape checking is enabled.
type InvalidShapeError struct {
	Err error
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("a resposta do modelo não segue o formato da questão: %v", e.Err)
}

func (e *InvalidShapeError) Unwrap() error { return e.Err }
