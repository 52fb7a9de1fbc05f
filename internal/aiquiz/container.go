package aiquiz

import (
	"net/http"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(settings *config.Settings) *AIQuizContainer {
	diag := NewLogDiagnostics()
	provider := NewProvider(settings, &http.Client{}, diag)
	service := NewService(provider, settings)
	handler := NewHandler(service, diag)

	return &AIQuizContainer{
		Handler: handler,
	}
}
