package container

import (
	"github.com/saulo-duarte/questoes-lambda/internal/aiquiz"
	"github.com/saulo-duarte/questoes-lambda/internal/config"
)

type Container struct {
	Settings        *config.Settings
	AIQuizContainer *aiquiz.AIQuizContainer
}

func New() *Container {
	settings := config.Load()
	config.InitLogger(settings)

	if settings.GeminiAPIKey == "" {
		config.Logger.Warn("GEMINI_API_KEY is not set; every generation request will fail")
	}

	return &Container{
		Settings:        settings,
		AIQuizContainer: aiquiz.NewAIQuizContainer(settings),
	}
}
