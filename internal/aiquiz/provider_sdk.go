package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type sdkProvider struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
	diag    Diagnostics
}

// NewSDKProvider talks to Gemini through the genai client. The client is
// built per call so a missing key never fails container startup.
func NewSDKProvider(s *config.Settings, client *http.Client, diag Diagnostics) Provider {
	return &sdkProvider{
		client:  client,
		baseURL: sdkBaseURL(s.GeminiBaseURL),
		model:   s.GeminiModel,
		apiKey:  s.GeminiAPIKey,
		diag:    diag,
	}
}

// sdkBaseURL drops the API version suffix; the SDK appends its own.
func sdkBaseURL(base string) string {
	if base == "" || base == config.DefaultGeminiBaseURL {
		return ""
	}
	base = strings.TrimSuffix(strings.TrimRight(base, "/"), "/v1beta")
	return base + "/"
}

func (p *sdkProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  p.client,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			p.diag.Record(ctx, "Gemini API Error", nil, logrus.Fields{
				"status": apiErr.Code,
				"body":   apiErr.Message,
			})
			return "", &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyUpstreamResponse
	}
	return text, nil
}
