package handler

import (
	"net/http"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/llm"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// ModelsHandler lists the language models a conversation may select.
type ModelsHandler struct {
	clients []llm.Client
}

// NewModelsHandler creates a new models handler.
func NewModelsHandler(clients ...llm.Client) *ModelsHandler {
	return &ModelsHandler{clients: clients}
}

// List handles GET /rag/models
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	// "default" always leads the list so UIs have a stable first entry.
	models := []model.ModelInfo{{ID: "default", Label: "Default model"}}
	for _, c := range h.clients {
		for _, id := range c.Models() {
			models = append(models, model.ModelInfo{ID: id, Label: id})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models": models,
	})
}
