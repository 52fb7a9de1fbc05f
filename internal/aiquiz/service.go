package aiquiz

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questoes-lambda/internal/config"
)

type Service interface {
	GenerateQuestion(ctx context.Context, req QuestionRequest) (json.RawMessage, error)
}

type service struct {
	provider Provider
	settings *config.Settings
}

func NewService(provider Provider, settings *config.Settings) Service {
	return &service{provider: provider, settings: settings}
}

// GenerateQuestion checks the credential before the input, and both before
// any call to the provider.
func (s *service) GenerateQuestion(ctx context.Context, req QuestionRequest) (json.RawMessage, error) {
	if s.settings.GeminiAPIKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}
	if !req.Complete() {
		return nil, ErrMissingFields
	}

	id := uuid.NewString()
	ctx = withGenerationID(ctx, id)
	log := config.WithContext(ctx).WithField("generation_id", id)

	prompt := BuildPrompt(req)
	log.Debugf("[AIQUIZ] Prompt enviado ao Gemini:\n%s", prompt)

	raw, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Debugf("[AIQUIZ] Resposta bruta do Gemini:\n%s", raw)

	clean := StripFences(raw)
	question, err := ParseModelOutput(clean)
	if err != nil {
		log.WithError(err).Warnf("[AIQUIZ] Falha ao decodificar JSON. Conteúdo limpo:\n%s", clean)
		return nil, err
	}

	if s.settings.StrictQuestionShape {
		if err := ValidateShape(question); err != nil {
			log.WithError(err).Warn("[AIQUIZ] Questão fora do formato esperado")
			return nil, err
		}
	}

	log.Info("[AIQUIZ] Questão gerada com sucesso")
	return question, nil
}
