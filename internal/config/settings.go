package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultGeminiModel   = "gemini-1.5-flash-latest"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	TransportREST = "rest"
	TransportSDK  = "sdk"
)

type Settings struct {
	Port     string
	LogLevel string

	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	GeminiTransport string

	// StrictQuestionShape rejects model output that does not match the
	// QuizQuestion schema instead of passing it through.
	StrictQuestionShape bool

	AllowedOrigins []string

	lambdaFunction string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the settings from the process environment. A missing
// GEMINI_API_KEY is not an error here: the handler reports it per request.
func Load() *Settings {
	strict, _ := strconv.ParseBool(os.Getenv("QUESTION_STRICT_SHAPE"))

	return &Settings{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL:   strings.TrimRight(getEnv("GEMINI_BASE_URL", DefaultGeminiBaseURL), "/"),
		GeminiTransport: strings.ToLower(getEnv("GEMINI_TRANSPORT", TransportREST)),

		StrictQuestionShape: strict,
		AllowedOrigins:      splitList(os.Getenv("ALLOWED_ORIGINS")),

		lambdaFunction: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
	}
}

func (s *Settings) RunningInLambda() bool {
	return s.lambdaFunction != ""
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
