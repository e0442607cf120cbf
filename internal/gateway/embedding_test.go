package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSidecar(t *testing.T, handler http.HandlerFunc) *CLIPEmbedder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCLIPEmbedder(srv.URL, 0)
}

func TestCLIPEmbedder_EmbedText(t *testing.T) {
	e := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed/text", r.URL.Path)

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a bar chart of revenue", req.Text)
		assert.Empty(t, req.ImageB64)

		json.NewEncoder(w).Encode(embedResponse{Vector: []float32{0.1, 0.2, 0.3}})
	})

	vec, err := e.EmbedText(context.Background(), "a bar chart of revenue")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestCLIPEmbedder_EmbedImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}

	e := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed/image", r.URL.Path)

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, base64.StdEncoding.EncodeToString(raw), req.ImageB64)

		json.NewEncoder(w).Encode(embedResponse{Vector: []float32{0.5, 0.6}})
	})

	vec, err := e.EmbedImage(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6}, vec)
}

func TestCLIPEmbedder_EmbedImageUndecodable(t *testing.T) {
	// The sidecar answers 200 with an empty vector for images it cannot
	// decode; that maps to (nil, nil), not an error.
	e := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{})
	})

	vec, err := e.EmbedImage(context.Background(), []byte("not an image"))
	require.NoError(t, err)
	assert.Nil(t, vec)
}

func TestCLIPEmbedder_ServiceError(t *testing.T) {
	e := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	})

	_, err := e.EmbedText(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
