package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/events"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/llm"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
)

// memConvRepo mimics the persistence semantics the orchestrator relies on,
// including the unique (conversation, role, client_message_id) constraint.
type memConvRepo struct {
	mu       sync.Mutex
	convs    map[string]*model.Conversation
	messages []*model.Message
	unique   map[string]*model.Message
}

func newMemConvRepo() *memConvRepo {
	return &memConvRepo{
		convs:  make(map[string]*model.Conversation),
		unique: make(map[string]*model.Message),
	}
}

func uniqueKey(convID string, role model.Role, clientMID *string) string {
	if clientMID == nil {
		return ""
	}
	return convID + "|" + string(role) + "|" + *clientMID
}

func (r *memConvRepo) Get(_ context.Context, id string) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[id]
	if !ok || conv.Deleted {
		return nil, errors.New("conversation not found")
	}
	cp := *conv
	return &cp, nil
}

func (r *memConvRepo) Create(_ context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	cp := *conv
	r.convs[conv.ID] = &cp
	return nil
}

func (r *memConvRepo) List(_ context.Context, limit, offset int) ([]model.Conversation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Conversation
	for _, c := range r.convs {
		if !c.Deleted {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memConvRepo) SaveSettings(_ context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.convs[conv.ID]; ok {
		stored.Model = conv.Model
		stored.TopK = conv.TopK
		stored.DocIDs = conv.DocIDs
	}
	return nil
}

func (r *memConvRepo) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[id]
	if !ok || conv.Deleted {
		return errors.New("conversation not found")
	}
	conv.Deleted = true
	return nil
}

func (r *memConvRepo) History(_ context.Context, convID string, limit int) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Message
	for _, m := range r.messages {
		if m.ConversationID == convID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memConvRepo) FindAssistantMessage(_ context.Context, convID, clientMessageID string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.unique[convID+"|"+string(model.RoleAssistant)+"|"+clientMessageID]
	if !ok {
		return nil, nil
	}
	cp := *msg
	return &cp, nil
}

func (r *memConvRepo) RecordTurn(_ context.Context, userMsg, assistantMsg *model.Message, attachments []model.Attachment) (*model.Message, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userMsg.ID == "" {
		userMsg.ID = uuid.New().String()
	}
	if assistantMsg.ID == "" {
		assistantMsg.ID = uuid.New().String()
	}

	if key := uniqueKey(userMsg.ConversationID, userMsg.Role, userMsg.ClientMessageID); key == "" || r.unique[key] == nil {
		cp := *userMsg
		r.messages = append(r.messages, &cp)
		if key != "" {
			r.unique[key] = &cp
		}
	}

	key := uniqueKey(assistantMsg.ConversationID, assistantMsg.Role, assistantMsg.ClientMessageID)
	if key != "" {
		if winner, ok := r.unique[key]; ok {
			cp := *winner
			return &cp, true, nil
		}
	}

	cp := *assistantMsg
	for i := range attachments {
		attachments[i].MessageID = cp.ID
		if attachments[i].ID == "" {
			attachments[i].ID = uuid.New().String()
		}
	}
	cp.Attachments = attachments
	r.messages = append(r.messages, &cp)
	if key != "" {
		r.unique[key] = &cp
	}
	out := cp
	return &out, false, nil
}

func (r *memConvRepo) assistantCount(convID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.messages {
		if m.ConversationID == convID && m.Role == model.RoleAssistant {
			n++
		}
	}
	return n
}

type fakeDocs struct {
	ready map[string]bool
}

func (f *fakeDocs) ReadyIDs(context.Context) (map[string]bool, error) {
	return f.ready, nil
}

type fakeRetriever struct {
	result     *rag.RetrievalResult
	err        error
	calls      int
	lastDocIDs []string
}

func (f *fakeRetriever) Retrieve(_ context.Context, _ string, docIDs []string, _ int) (*rag.RetrievalResult, error) {
	f.calls++
	f.lastDocIDs = docIDs
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	if len(res.ScopeDocIDs) == 0 {
		res.ScopeDocIDs = docIDs
	}
	return &res, nil
}

type fakeResolver struct {
	images *rag.ImageResolution
	tables *rag.TableResolution
}

func (f *fakeResolver) ResolveImages(_ context.Context, _ string, docIDs []string, intent model.Intent) (*rag.ImageResolution, error) {
	if len(docIDs) == 0 || !intent.AllowImage {
		return &rag.ImageResolution{}, nil
	}
	if f.images == nil {
		return &rag.ImageResolution{}, nil
	}
	return f.images, nil
}

func (f *fakeResolver) ResolveAllTables(_ context.Context, _ []string) (*rag.TableResolution, error) {
	if f.tables == nil {
		return &rag.TableResolution{}, nil
	}
	return f.tables, nil
}

type fakeLLM struct {
	mu     sync.Mutex
	calls  int
	answer string
	err    error
}

func (f *fakeLLM) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.answer, Model: req.Model}, nil
}

func (f *fakeLLM) Name() string     { return "fake" }
func (f *fakeLLM) Models() []string { return []string{"fake-model"} }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recordingPublisher captures turn events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.TurnEvent
}

func (p *recordingPublisher) TurnCompleted(_ context.Context, e *events.TurnEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) all() []*events.TurnEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*events.TurnEvent(nil), p.events...)
}

func textHits() []model.RetrievalHit {
	return []model.RetrievalHit{
		{PointID: "p1", Content: "revenue grew 12% in Q3", Modality: model.ModalityText, DocID: "doc-1", Score: 0.9},
		{PointID: "p2", Content: "costs were flat", Modality: model.ModalityText, DocID: "doc-1", Score: 0.7},
	}
}

func newTestService(repo *memConvRepo, docs *fakeDocs, ret *fakeRetriever, res *fakeResolver, client llm.Client) *AskService {
	log, _ := logger.New("error")
	return NewAskService(repo, docs, ret, res, client, nil, log, AskConfig{DefaultModel: "fake-model"})
}

func TestAsk_NewConversation(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), DominantDocID: "doc-1", ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "Revenue grew 12%."}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client)

	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "How did revenue evolve?"})
	require.NoError(t, err)

	assert.Equal(t, "Revenue grew 12%.", resp.Answer)
	assert.NotEmpty(t, resp.ConversationID)
	assert.NotEmpty(t, resp.AssistantMessageID)
	assert.Len(t, resp.Context, 2)
	assert.Empty(t, resp.Attachments)
	assert.Equal(t, 1, client.callCount())
}

func TestAsk_IdempotentReplay(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "first answer"}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client)

	req := &model.AskRequest{Question: "How did revenue evolve?", ClientMessageID: "tok-1"}
	first, err := svc.Ask(context.Background(), req)
	require.NoError(t, err)

	// The stored answer must come back even if the model would now answer
	// differently.
	client.answer = "second answer"

	req2 := &model.AskRequest{Question: "How did revenue evolve?", ClientMessageID: "tok-1", ConversationID: first.ConversationID}
	second, err := svc.Ask(context.Background(), req2)
	require.NoError(t, err)

	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.AssistantMessageID, second.AssistantMessageID)
	assert.Equal(t, first.Context, second.Context)
	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, 1, repo.assistantCount(first.ConversationID))
}

func TestAsk_ConcurrentRetries(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "the answer"}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client)

	conv := &model.Conversation{Title: "t", Model: "fake-model", TopK: 5}
	conv.SetDocIDs(nil)
	require.NoError(t, repo.Create(context.Background(), conv))

	const n = 8
	responses := make([]*model.AskResponse, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Ask(context.Background(), &model.AskRequest{
				Question:        "How did revenue evolve?",
				ConversationID:  conv.ID,
				ClientMessageID: "retry-token",
			})
			if assert.NoError(t, err) {
				responses[i] = resp
			}
		}(i)
	}
	wg.Wait()

	// Exactly one assistant message wins; every caller sees it.
	assert.Equal(t, 1, repo.assistantCount(conv.ID))
	for i := 0; i < n; i++ {
		require.NotNil(t, responses[i])
	}
	for i := 1; i < n; i++ {
		assert.Equal(t, responses[0].AssistantMessageID, responses[i].AssistantMessageID)
		assert.Equal(t, responses[0].Answer, responses[i].Answer)
	}
}

func TestAsk_LLMFailureAbsorbed(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{err: errors.New("upstream timeout")}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client)

	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "How did revenue evolve?", ClientMessageID: "tok-9"})
	require.NoError(t, err)

	assert.Contains(t, resp.Answer, "could not produce an answer")
	assert.Len(t, resp.Context, 2)
	// The turn persisted: a retry replays it without another model call.
	assert.Equal(t, 1, repo.assistantCount(resp.ConversationID))

	replay, err := svc.Ask(context.Background(), &model.AskRequest{
		Question:        "How did revenue evolve?",
		ConversationID:  resp.ConversationID,
		ClientMessageID: "tok-9",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.Answer, replay.Answer)
	assert.Equal(t, 1, client.callCount())
}

func TestAsk_InvalidDocIDs(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits()}}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, &fakeLLM{answer: "x"})

	docIDs := []string{"doc-1", "doc-missing"}
	_, err := svc.Ask(context.Background(), &model.AskRequest{Question: "q about tables", DocIDs: &docIDs})

	var verr *rag.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"doc-missing"}, verr.InvalidDocIDs)
	assert.Equal(t, 0, ret.calls)
}

func TestAsk_NoContextSkipsModel(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: nil}}
	client := &fakeLLM{answer: "should not be called"}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{}}, ret, &fakeResolver{}, client)

	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "anything at all"})
	require.NoError(t, err)

	assert.Equal(t, answerNoContext, resp.Answer)
	assert.Empty(t, resp.Context)
	assert.Equal(t, 0, client.callCount())
}

func TestAsk_ChartQuestionWithoutImageMatch(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "The chart shows growth."}
	// No image found in the image space for this question.
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{images: &rag.ImageResolution{}}, client)

	docIDs := []string{"doc-1"}
	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "What does the chart show?", DocIDs: &docIDs})
	require.NoError(t, err)

	assert.Contains(t, resp.Answer, noteNoImage)
	assert.Empty(t, resp.Attachments)
}

func TestAsk_SingleBestImageAttached(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "The figure shows the growth curve."}
	resolver := &fakeResolver{images: &rag.ImageResolution{
		FirstPath: "doc-1/img/p3.png",
		Bytes:     [][]byte{{0x89, 0x50}},
	}}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, resolver, client)

	docIDs := []string{"doc-1"}
	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "What does the figure show?", DocIDs: &docIDs})
	require.NoError(t, err)

	require.Len(t, resp.Attachments, 1)
	assert.Equal(t, model.KindImage, resp.Attachments[0].Kind)
	assert.Equal(t, "doc-1/img/p3.png", resp.Attachments[0].Path)
	assert.NotContains(t, resp.Answer, noteNoImage)
}

func TestAsk_WantAllTables(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "Here is a summary of every table."}
	resolver := &fakeResolver{tables: &rag.TableResolution{
		Representatives: []model.AssetRef{
			{Path: "doc-1/tables/t1.csv", Title: "report.pdf · table · page 2"},
			{Path: "doc-1/tables/t2.csv", Title: "report.pdf · table · page 5"},
		},
		Duplicates: []model.DuplicateGroup{{
			Representative: model.AssetRef{Path: "doc-1/tables/t1.csv", Title: "report.pdf · table · page 2"},
			Duplicates:     []model.AssetRef{{Path: "doc-1/tables/t9.csv", Title: "report.pdf · table · page 9"}},
		}},
		Catalog: "TABLES (preview):",
	}}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, resolver, client)

	docIDs := []string{"doc-1"}
	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "Show me all the tables", DocIDs: &docIDs})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Answer, "Found 0 image(s) and 2 table(s)"), resp.Answer)
	assert.Contains(t, resp.Answer, "also present in: report.pdf · table · page 9")
	require.Len(t, resp.Attachments, 2)
	for i, a := range resp.Attachments {
		assert.Equal(t, model.KindTable, a.Kind, fmt.Sprintf("attachment %d", i))
	}
}

func TestAsk_ScopeFromConversationWhenAbsent(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits()}}
	client := &fakeLLM{answer: "ok"}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-7": true}}, ret, &fakeResolver{}, client)

	conv := &model.Conversation{Title: "t", Model: "fake-model", TopK: 5}
	conv.SetDocIDs([]string{"doc-7"})
	require.NoError(t, repo.Create(context.Background(), conv))

	// DocIDs absent: the persisted scope applies and passes validation.
	_, err := svc.Ask(context.Background(), &model.AskRequest{Question: "hello there", ConversationID: conv.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, ret.calls)

	// Explicit empty scope overrides the persisted one.
	empty := []string{}
	_, err = svc.Ask(context.Background(), &model.AskRequest{Question: "hello again", ConversationID: conv.ID, DocIDs: &empty})
	require.NoError(t, err)
}

func TestAsk_StalePersistedScopeDropped(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits()}}
	client := &fakeLLM{answer: "ok"}
	svc := newTestService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client)

	// The pinned scope references a document that has since been deleted.
	conv := &model.Conversation{Title: "t", Model: "fake-model", TopK: 5}
	conv.SetDocIDs([]string{"doc-1", "doc-gone"})
	require.NoError(t, repo.Create(context.Background(), conv))

	resp, err := svc.Ask(context.Background(), &model.AskRequest{Question: "hello there", ConversationID: conv.ID})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// The stale id is dropped, not rejected, and retrieval proceeds on the
	// surviving scope.
	assert.Equal(t, []string{"doc-1"}, ret.lastDocIDs)

	// The sanitized scope is written back so later turns skip the dance.
	stored, err := repo.Get(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, stored.DocIDList())
}

func TestAsk_ReplaySurvivesScopeGoneStale(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "the original answer"}
	docs := &fakeDocs{ready: map[string]bool{"doc-1": true}}
	svc := newTestService(repo, docs, ret, &fakeResolver{}, client)

	scope := []string{"doc-1"}
	req := &model.AskRequest{Question: "hello there", ClientMessageID: "tok-stale", DocIDs: &scope}
	first, err := svc.Ask(context.Background(), req)
	require.NoError(t, err)

	// The document is re-ingested and temporarily not ready. A retry of the
	// persisted turn must replay the stored answer, not fail validation.
	docs.ready = map[string]bool{}

	second, err := svc.Ask(context.Background(), &model.AskRequest{
		Question:        "hello there",
		ClientMessageID: "tok-stale",
		ConversationID:  first.ConversationID,
		DocIDs:          &scope,
	})
	require.NoError(t, err)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.AssistantMessageID, second.AssistantMessageID)
	assert.Equal(t, 1, ret.calls)
}

func TestAsk_ReplayPublishesEvent(t *testing.T) {
	repo := newMemConvRepo()
	ret := &fakeRetriever{result: &rag.RetrievalResult{Hits: textHits(), ScopeDocIDs: []string{"doc-1"}}}
	client := &fakeLLM{answer: "ok"}
	pub := &recordingPublisher{}
	log, _ := logger.New("error")
	svc := NewAskService(repo, &fakeDocs{ready: map[string]bool{"doc-1": true}}, ret, &fakeResolver{}, client, pub, log, AskConfig{DefaultModel: "fake-model"})

	req := &model.AskRequest{Question: "hello there", ClientMessageID: "tok-ev"}
	first, err := svc.Ask(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Ask(context.Background(), &model.AskRequest{Question: "hello there", ClientMessageID: "tok-ev", ConversationID: first.ConversationID})
	require.NoError(t, err)

	evs := pub.all()
	require.Len(t, evs, 2)
	assert.False(t, evs[0].Replayed)
	assert.True(t, evs[1].Replayed)
	assert.Equal(t, first.AssistantMessageID, evs[1].AssistantMessageID)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	s := strings.Repeat("é", 60)

	out := truncate(s, 81)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("é", 40), out)

	assert.Equal(t, "abc", truncate("abc", 80))
}
