package config_test

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/saulo-duarte/questoes-lambda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_TRANSPORT",
		"QUESTION_STRICT_SHAPE", "ALLOWED_ORIGINS", "LOG_LEVEL", "PORT", "AWS_LAMBDA_FUNCTION_NAME"} {
		t.Setenv(k, "")
	}

	s := config.Load()

	if s.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey deveria ser vazia, recebido %q", s.GeminiAPIKey)
	}
	if s.GeminiModel != config.DefaultGeminiModel {
		t.Errorf("GeminiModel = %q", s.GeminiModel)
	}
	if s.GeminiBaseURL != config.DefaultGeminiBaseURL {
		t.Errorf("GeminiBaseURL = %q", s.GeminiBaseURL)
	}
	if s.GeminiTransport != config.TransportREST {
		t.Errorf("GeminiTransport = %q", s.GeminiTransport)
	}
	if s.StrictQuestionShape {
		t.Error("StrictQuestionShape deveria ser false por padrão")
	}
	if len(s.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v", s.AllowedOrigins)
	}
	if s.Port != "8080" || s.LogLevel != "info" {
		t.Errorf("Port/LogLevel = %q/%q", s.Port, s.LogLevel)
	}
	if s.RunningInLambda() {
		t.Error("RunningInLambda deveria ser false fora da Lambda")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "segredo")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9999/v1beta/")
	t.Setenv("GEMINI_TRANSPORT", "SDK")
	t.Setenv("QUESTION_STRICT_SHAPE", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.com, ,https://b.com")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "questoes")

	s := config.Load()

	if s.GeminiAPIKey != "segredo" || s.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("chave/modelo inesperados: %q/%q", s.GeminiAPIKey, s.GeminiModel)
	}
	if s.GeminiBaseURL != "http://localhost:9999/v1beta" {
		t.Errorf("GeminiBaseURL = %q", s.GeminiBaseURL)
	}
	if s.GeminiTransport != config.TransportSDK {
		t.Errorf("GeminiTransport = %q", s.GeminiTransport)
	}
	if !s.StrictQuestionShape {
		t.Error("StrictQuestionShape deveria ser true")
	}
	if len(s.AllowedOrigins) != 2 || s.AllowedOrigins[0] != "https://a.com" || s.AllowedOrigins[1] != "https://b.com" {
		t.Errorf("AllowedOrigins = %v", s.AllowedOrigins)
	}
	if !s.RunningInLambda() {
		t.Error("RunningInLambda deveria ser true")
	}
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")

	entry := config.WithContext(ctx)
	if entry.Data["request_id"] != "req-123" {
		t.Errorf("request_id = %v", entry.Data["request_id"])
	}

	if _, ok := config.WithContext(context.Background()).Data["request_id"]; ok {
		t.Error("request_id não deveria existir sem middleware")
	}
}
