package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Provider sends one prompt to the model and returns the raw text of the
// first candidate. It does not retry.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

func NewProvider(s *config.Settings, client *http.Client, diag Diagnostics) Provider {
	if s.GeminiTransport == config.TransportSDK {
		return NewSDKProvider(s, client, diag)
	}
	return NewRESTProvider(s, client, diag)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

func (r *generateContentResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[0].Text
}

type restProvider struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
	diag    Diagnostics
}

func NewRESTProvider(s *config.Settings, client *http.Client, diag Diagnostics) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &restProvider{
		client:  client,
		baseURL: s.GeminiBaseURL,
		model:   s.GeminiModel,
		apiKey:  s.GeminiAPIKey,
		diag:    diag,
	}
}

func (p *restProvider) endpoint(key string) string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, url.QueryEscape(key))
}

// redactKey keeps the ?key= URL out of error text, which reaches the caller.
func (p *restProvider) redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = p.endpoint("REDACTED")
	}
	return err
}

func (p *restProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(p.apiKey), bytes.NewReader(body))
	if err != nil {
		return "", p.redactKey(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", p.redactKey(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		p.diag.Record(ctx, "Gemini API Error", nil, logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(errBody),
		})
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	text := out.firstText()
	if text == "" {
		return "", ErrEmptyUpstreamResponse
	}
	return text, nil
}
