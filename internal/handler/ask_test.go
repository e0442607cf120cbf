package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/llm"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/service"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
)

// stubRepo is just enough persistence for one conversation's turns.
type stubRepo struct {
	convs    map[string]*model.Conversation
	messages map[string]*model.Message // keyed by client message id
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		convs:    make(map[string]*model.Conversation),
		messages: make(map[string]*model.Message),
	}
}

func (r *stubRepo) Get(_ context.Context, id string) (*model.Conversation, error) {
	conv, ok := r.convs[id]
	if !ok {
		return nil, errors.New("conversation not found")
	}
	return conv, nil
}

func (r *stubRepo) Create(_ context.Context, conv *model.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	r.convs[conv.ID] = conv
	return nil
}

func (r *stubRepo) SaveSettings(context.Context, *model.Conversation) error { return nil }

func (r *stubRepo) History(context.Context, string, int) ([]model.Message, error) {
	return nil, nil
}

func (r *stubRepo) FindAssistantMessage(_ context.Context, convID, clientMessageID string) (*model.Message, error) {
	if msg, ok := r.messages[convID+"|"+clientMessageID]; ok {
		return msg, nil
	}
	return nil, nil
}

func (r *stubRepo) RecordTurn(_ context.Context, userMsg, assistantMsg *model.Message, attachments []model.Attachment) (*model.Message, bool, error) {
	if assistantMsg.ID == "" {
		assistantMsg.ID = uuid.New().String()
	}
	assistantMsg.Attachments = attachments
	if assistantMsg.ClientMessageID != nil {
		r.messages[assistantMsg.ConversationID+"|"+*assistantMsg.ClientMessageID] = assistantMsg
	}
	return assistantMsg, false, nil
}

type stubDocs struct{ ready map[string]bool }

func (d *stubDocs) ReadyIDs(context.Context) (map[string]bool, error) { return d.ready, nil }

type stubRetriever struct{ hits []model.RetrievalHit }

func (s *stubRetriever) Retrieve(_ context.Context, _ string, docIDs []string, _ int) (*rag.RetrievalResult, error) {
	return &rag.RetrievalResult{Hits: s.hits, ScopeDocIDs: docIDs}, nil
}

type stubResolver struct{}

func (stubResolver) ResolveImages(context.Context, string, []string, model.Intent) (*rag.ImageResolution, error) {
	return &rag.ImageResolution{}, nil
}

func (stubResolver) ResolveAllTables(context.Context, []string) (*rag.TableResolution, error) {
	return &rag.TableResolution{}, nil
}

type stubLLM struct{ calls int }

func (s *stubLLM) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	return &llm.CompletionResponse{Content: "stubbed answer", Model: req.Model}, nil
}
func (s *stubLLM) Name() string     { return "stub" }
func (s *stubLLM) Models() []string { return []string{"stub-model"} }

func newTestRouter(t *testing.T) (*chi.Mux, *stubLLM) {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)

	client := &stubLLM{}
	hits := []model.RetrievalHit{{PointID: "p1", Content: "some context", Modality: model.ModalityText, DocID: "doc-1", Score: 0.8}}
	svc := service.NewAskService(
		newStubRepo(),
		&stubDocs{ready: map[string]bool{"doc-1": true}},
		&stubRetriever{hits: hits},
		stubResolver{},
		client,
		nil,
		log,
		service.AskConfig{DefaultModel: "stub-model"},
	)

	r := chi.NewRouter()
	h := NewAskHandler(svc, log, 50)
	r.Post("/rag/ask", h.Ask)
	return r, client
}

func postAsk(t *testing.T, router http.Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/rag/ask", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAskEndpoint_RepostReturnsSameAnswer(t *testing.T) {
	router, client := newTestRouter(t)

	first := postAsk(t, router, map[string]interface{}{
		"question":          "What does the report say?",
		"client_message_id": "cm-42",
	})
	require.Equal(t, http.StatusOK, first.Code)

	var firstResp model.AskResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NotEmpty(t, firstResp.ConversationID)

	second := postAsk(t, router, map[string]interface{}{
		"question":          "What does the report say?",
		"client_message_id": "cm-42",
		"conversation_id":   firstResp.ConversationID,
	})
	require.Equal(t, http.StatusOK, second.Code)

	var secondResp model.AskResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))

	assert.Equal(t, firstResp.Answer, secondResp.Answer)
	assert.Equal(t, firstResp.AssistantMessageID, secondResp.AssistantMessageID)
	assert.Equal(t, 1, client.calls)
}

func TestAskEndpoint_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"empty question", map[string]interface{}{"question": ""}},
		{"bad conversation id", map[string]interface{}{"question": "q", "conversation_id": "not-a-uuid"}},
		{"top_k too large", map[string]interface{}{"question": "q", "top_k": 9999}},
		{"negative top_k", map[string]interface{}{"question": "q", "top_k": -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postAsk(t, router, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAskEndpoint_ExplicitDocScopeDecoding(t *testing.T) {
	router, _ := newTestRouter(t)

	// An explicit unknown doc id is rejected with the offending ids.
	rec := postAsk(t, router, map[string]interface{}{
		"question": "what is in these documents?",
		"doc_ids":  []string{"doc-unknown"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		InvalidDocIDs []string `json:"invalid_doc_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"doc-unknown"}, body.InvalidDocIDs)

	// An absent doc_ids field is fine.
	rec = postAsk(t, router, map[string]interface{}{"question": "no scope at all"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
