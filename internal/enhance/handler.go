// internal/enhance/handler.go
package enhance

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

const maxBodyBytes = 1 << 20

type enhanceRequest struct {
	Code string `json:"code"`
}

// enhanceResponse always carries enhancedCode, even when the model returned
// nothing but fences.
type enhanceResponse struct {
	EnhancedCode string `json:"enhancedCode"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves POST requests carrying {"code": "..."} and answers with
// {"enhancedCode": "..."} or {"error": "..."}.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)
	log := h.logger.With(zap.String("request_id", id))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	if h.service == nil || h.service.completer == nil {
		log.Error("enhance requested without a model", zap.Error(ErrNotConfigured))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: ErrNotConfigured.Error()})
		return
	}

	var req enhanceRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Warn("invalid enhance request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	out, err := h.service.Enhance(r.Context(), req.Code)
	switch {
	case errors.Is(err, ErrEmptyCode):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Code is required"})
		return
	case err != nil:
		log.Error("enhance failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	log.Info("code enhanced",
		zap.Int("in_bytes", len(req.Code)),
		zap.Int("out_bytes", len(out)),
		zap.Duration("took", time.Since(start)))
	writeJSON(w, http.StatusOK, enhanceResponse{EnhancedCode: out})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
