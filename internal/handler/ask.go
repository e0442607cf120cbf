// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/middleware"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/service"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/store"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
)

// AskHandler handles the ask endpoint.
type AskHandler struct {
	service *service.AskService
	logger  *logger.Logger
	maxTopK int
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(svc *service.AskService, log *logger.Logger, maxTopK int) *AskHandler {
	if maxTopK <= 0 {
		maxTopK = 50
	}
	return &AskHandler{service: svc, logger: log, maxTopK: maxTopK}
}

// Ask handles POST /rag/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req model.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateQuestion(req.Question); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ConversationID != "" {
		if err := middleware.ValidateConversationID(req.ConversationID); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := middleware.ValidateTopK(req.TopK, h.maxTopK); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		h.writeAskError(w, r, &req, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeAskError maps orchestrator failures onto HTTP statuses: validation
// to 400/404, upstream retrieval plumbing to 502, the rest to 500.
func (h *AskHandler) writeAskError(w http.ResponseWriter, r *http.Request, req *model.AskRequest, err error) {
	var verr *rag.ValidationError
	if errors.As(err, &verr) {
		writeErrorDetails(w, http.StatusBadRequest, "documents missing or not ready", map[string]interface{}{
			"invalid_doc_ids": verr.InvalidDocIDs,
		})
		return
	}
	if errors.Is(err, store.ErrConversationNotFound) {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	var embErr *rag.EmbeddingError
	var retErr *rag.RetrievalError
	if errors.As(err, &embErr) || errors.As(err, &retErr) {
		h.logger.Error("retrieval backend failed",
			zap.String("correlation_id", middleware.GetCorrelationID(r.Context())),
			zap.String("conversation_id", req.ConversationID),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "retrieval backend unavailable")
		return
	}

	h.logger.Error("ask failed",
		zap.String("correlation_id", middleware.GetCorrelationID(r.Context())),
		zap.String("conversation_id", req.ConversationID),
		zap.Error(err))
	writeError(w, http.StatusInternalServerError, "failed to process question")
}
