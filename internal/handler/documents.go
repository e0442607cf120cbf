package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/store"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
)

// DocumentHandler exposes read-only access to ingested documents.
type DocumentHandler struct {
	docs   *store.DocumentStore
	logger *logger.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(docs *store.DocumentStore, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{docs: docs, logger: log}
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	docs, total, err := h.docs.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list documents", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"total":     total,
	})
}

// Get handles GET /api/v1/documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid document ID format")
		return
	}

	doc, err := h.docs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		h.logger.Error("failed to get document", zap.String("document_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}
