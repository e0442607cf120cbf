package handler

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/gateway"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db     *gorm.DB
	vector *gateway.VectorSearch
	blobs  *gateway.BlobStore
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB, vector *gateway.VectorSearch, blobs *gateway.BlobStore) *HealthHandler {
	return &HealthHandler{db: db, vector: vector, blobs: blobs}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready. Readiness requires every backend a query turn
// touches: PostgreSQL, Qdrant and the blob store.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := store.Healthy(h.db); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "database not reachable",
		})
		return
	}
	if h.vector == nil || !h.vector.Healthy(ctx) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "vector store not reachable",
		})
		return
	}
	if h.blobs == nil || !h.blobs.Healthy(ctx) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "blob store not reachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
