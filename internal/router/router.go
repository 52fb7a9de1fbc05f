package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/questoes-lambda/internal/aiquiz"
	"github.com/saulo-duarte/questoes-lambda/internal/middlewares"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Mount("/api/generate", aiquiz.Routes(cfg.AIQuizHandler))
	return r
}
