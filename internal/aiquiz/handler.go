package aiquiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/questoes-lambda/internal/config"
)

const generateFailurePrefix = "Failed to generate question. "

type Handler struct {
	service Service
	diag    Diagnostics
}

func NewHandler(s Service, diag Diagnostics) *Handler {
	return &Handler{service: s, diag: diag}
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	config.Error(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error())
}

func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.MethodNotAllowed(w, r)
		return
	}

	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// An unreadable body is treated as an empty one.
		log.WithError(err).Warn("Corpo da requisição inválido")
		req = QuestionRequest{}
	}

	question, err := h.service.GenerateQuestion(r.Context(), req)
	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, question)
	case errors.Is(err, ErrAPIKeyNotConfigured):
		log.Error("GEMINI_API_KEY não configurada")
		config.Error(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrMissingFields):
		log.Warn("Requisição sem os campos obrigatórios")
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.diag.Record(r.Context(), "Error calling Gemini API", err, nil)
		config.Error(w, http.StatusInternalServerError, generateFailurePrefix+err.Error())
	}
}
