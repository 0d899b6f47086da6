// Package rest exposes the translation pipeline over JSON HTTP.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
	"github.com/svadhyaya/padaccheda-backend/pkg/ctxutil"
)

// translator defines what the handler needs from the translation service.
type translator interface {
	Translate(ctx context.Context, rawText string) (*domain.TranslationResult, error)
}

// TranslateHandler serves POST /api/translate.
type TranslateHandler struct {
	svc translator
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translator, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{
		svc: svc,
		log: logger.With("handler", "translate"),
	}
}

// TranslateRequest is the request body for /api/translate.
type TranslateRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Translate handles a translation request. Input errors map to 400, model
// collaborator failures to 502; dictionary failures never surface here —
// they arrive as warnings inside a 200 response.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return
	}

	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION", "text is required")
		return
	}

	result, err := h.svc.Translate(r.Context(), req.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *TranslateHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())

	case errors.Is(err, domain.ErrModelService):
		h.log.ErrorContext(r.Context(), "model service failure",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusBadGateway, "MODEL_UNAVAILABLE", "semantic analysis service failed")

	default:
		h.log.ErrorContext(r.Context(), "unexpected translation error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}
