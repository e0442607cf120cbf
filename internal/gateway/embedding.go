// Package gateway holds the adapters to the external collaborators of the
// query engine: embedding services, the vector store, the blob store and
// the signature cache. Gateways are constructed once at process start and
// injected; the engine never touches a global client.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEmbedder produces vectors in the compact text embedding space via
// the OpenAI embeddings API. The requested dimensionality must match the
// text collection's.
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
}

// NewOpenAIEmbedder creates a text embedder.
func NewOpenAIEmbedder(apiKey, model string, dimensions int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbedder{
		client:     openai.NewClient(apiKey),
		model:      openai.EmbeddingModel(model),
		dimensions: dimensions,
	}, nil
}

// EmbedText embeds a question in the text space.
func (e *OpenAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      e.model,
		Dimensions: e.dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding response carried no vectors")
	}
	return resp.Data[0].Embedding, nil
}

// CLIPEmbedder talks to the multimodal (CLIP) embedding sidecar over HTTP.
// Text and images embed into the same space, which has a different
// dimensionality than the text space; the two must never be mixed.
type CLIPEmbedder struct {
	baseURL string
	client  *http.Client
}

// NewCLIPEmbedder creates a multimodal embedder for the given sidecar URL.
func NewCLIPEmbedder(baseURL string, timeout time.Duration) *CLIPEmbedder {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &CLIPEmbedder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type embedRequest struct {
	Text     string `json:"text,omitempty"`
	ImageB64 string `json:"image_b64,omitempty"`
}

type embedResponse struct {
	Vector []float32 `json:"vector"`
}

// EmbedText embeds a question in the multimodal space.
func (e *CLIPEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return e.post(ctx, "/embed/text", embedRequest{Text: text})
}

// EmbedImage embeds raw image bytes. Returns (nil, nil) when the sidecar
// could not decode the image, mirroring the service's null response.
func (e *CLIPEmbedder) EmbedImage(ctx context.Context, data []byte) ([]float32, error) {
	vec, err := e.post(ctx, "/embed/image", embedRequest{ImageB64: base64.StdEncoding.EncodeToString(data)})
	if err != nil {
		return nil, err
	}
	if len(vec) == 0 {
		return nil, nil
	}
	return vec, nil
}

func (e *CLIPEmbedder) post(ctx context.Context, path string, payload embedRequest) ([]float32, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedding service returned %d: %s", resp.StatusCode, raw)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	return out.Vector, nil
}
