package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", h.GenerateQuestion)
	r.MethodNotAllowed(h.MethodNotAllowed)
	return r
}
