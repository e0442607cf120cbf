// Package service implements the query engine's business logic.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/events"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/llm"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/metrics"
)

// Answers used when a turn completes without a useful model call.
const (
	answerNoContext = "No relevant information was found in the selected documents."
	answerLLMFailed = "The language model could not produce an answer for this question. The retrieved context has been kept with this message; please try again."
	noteNoImage     = "No relevant image was found in the documents for this question."
)

// ConversationRepo is the persistence surface the orchestrator needs.
type ConversationRepo interface {
	Get(ctx context.Context, id string) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation) error
	SaveSettings(ctx context.Context, conv *model.Conversation) error
	History(ctx context.Context, convID string, limit int) ([]model.Message, error)
	FindAssistantMessage(ctx context.Context, convID, clientMessageID string) (*model.Message, error)
	RecordTurn(ctx context.Context, userMsg, assistantMsg *model.Message, attachments []model.Attachment) (*model.Message, bool, error)
}

// DocumentRepo answers which documents a query may target.
type DocumentRepo interface {
	ReadyIDs(ctx context.Context) (map[string]bool, error)
}

// Retriever runs one balanced retrieval pass.
type Retriever interface {
	Retrieve(ctx context.Context, question string, docIDs []string, topK int) (*rag.RetrievalResult, error)
}

// AttachmentResolver resolves image and table attachments for one turn.
type AttachmentResolver interface {
	ResolveImages(ctx context.Context, question string, docIDs []string, intent model.Intent) (*rag.ImageResolution, error)
	ResolveAllTables(ctx context.Context, docIDs []string) (*rag.TableResolution, error)
}

// EventPublisher emits one event per resolved turn, replays included.
type EventPublisher interface {
	TurnCompleted(ctx context.Context, event *events.TurnEvent)
}

// AskConfig holds orchestrator defaults and bounds.
type AskConfig struct {
	DefaultTopK   int
	MaxTopK       int
	HistoryLimit  int
	DefaultModel  string
	MaxTableChars int
}

// AskService orchestrates one conversational turn: intent, retrieval,
// attachment resolution, policy, the model call and idempotent persistence.
type AskService struct {
	convs     ConversationRepo
	docs      DocumentRepo
	retriever Retriever
	resolver  AttachmentResolver
	llm       llm.Client
	publisher EventPublisher
	logger    *logger.Logger
	cfg       AskConfig
}

// NewAskService creates the orchestrator. publisher may be nil when event
// publishing is disabled.
func NewAskService(
	convs ConversationRepo,
	docs DocumentRepo,
	retriever Retriever,
	resolver AttachmentResolver,
	llmClient llm.Client,
	publisher EventPublisher,
	log *logger.Logger,
	cfg AskConfig,
) *AskService {
	if cfg.DefaultTopK <= 0 {
		cfg.DefaultTopK = 5
	}
	if cfg.MaxTopK <= 0 {
		cfg.MaxTopK = 50
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.MaxTableChars <= 0 {
		cfg.MaxTableChars = 4000
	}
	return &AskService{
		convs:     convs,
		docs:      docs,
		retriever: retriever,
		resolver:  resolver,
		llm:       llmClient,
		publisher: publisher,
		logger:    log,
		cfg:       cfg,
	}
}

// turnExtra is the snapshot persisted with the assistant message so a
// replayed turn can reproduce the original response byte for byte.
type turnExtra struct {
	Context []model.ContextPoint `json:"context"`
	Intent  model.Intent         `json:"intent"`
}

// Ask runs one turn. Re-posting the same (conversation, client_message_id)
// replays the stored answer without touching retrieval or the model.
func (s *AskService) Ask(ctx context.Context, req *model.AskRequest) (*model.AskResponse, error) {
	start := time.Now()

	if req.Question == "" {
		return nil, errors.New("question is required")
	}

	topK := req.TopK
	if topK <= 0 {
		topK = s.cfg.DefaultTopK
	}
	if topK > s.cfg.MaxTopK {
		topK = s.cfg.MaxTopK
	}

	conv, err := s.resolveConversation(ctx, req, topK)
	if err != nil {
		return nil, err
	}

	// A stored assistant message for this token means this is a retry. The
	// lookup runs before any scope validation so a legitimate retry replays
	// even when the documents have since changed state.
	if req.ClientMessageID != "" {
		if stored, err := s.convs.FindAssistantMessage(ctx, conv.ID, req.ClientMessageID); err != nil {
			return nil, err
		} else if stored != nil {
			metrics.IdempotentReplaysTotal.Inc()
			metrics.AsksTotal.WithLabelValues("replayed").Inc()
			resp := responseFromMessage(conv.ID, stored)
			s.publishEvent(ctx, resp, conv, conv.DocIDList(), true, start)
			return resp, nil
		}
	}

	docIDs, err := s.resolveScope(ctx, req, conv)
	if err != nil {
		return nil, err
	}

	intent := rag.DetectIntent(req.Question)

	retrievalStart := time.Now()
	result, err := s.retriever.Retrieve(ctx, req.Question, docIDs, topK)
	if err != nil {
		metrics.AsksTotal.WithLabelValues("retrieval_error").Inc()
		return nil, err
	}
	metrics.RetrievalDuration.WithLabelValues("text").Observe(time.Since(retrievalStart).Seconds())
	metrics.RetrievalHits.Observe(float64(len(result.Hits)))

	// Attachments resolve against the effective scope so an inferred
	// dominant document still gets its assets considered.
	scope := result.ScopeDocIDs

	imageRes, err := s.resolver.ResolveImages(ctx, req.Question, scope, intent)
	if err != nil {
		metrics.AsksTotal.WithLabelValues("retrieval_error").Inc()
		return nil, err
	}

	var tableRes *rag.TableResolution
	if intent.WantAllTables && len(scope) > 0 {
		tableRes, err = s.resolver.ResolveAllTables(ctx, scope)
		if err != nil {
			metrics.AsksTotal.WithLabelValues("retrieval_error").Inc()
			return nil, err
		}
	}

	assembly := rag.AssembleContext(result.Hits, intent, s.cfg.MaxTableChars)

	attachments := s.selectAttachments(intent, assembly, imageRes, tableRes)

	answer, llmErr := s.answerTurn(ctx, req, conv, intent, assembly, imageRes, tableRes, attachments)

	resp, raceReplayed, err := s.persistTurn(ctx, req, conv, intent, assembly, answer, attachments)
	if err != nil {
		metrics.AsksTotal.WithLabelValues("persist_error").Inc()
		return nil, err
	}

	outcome := "ok"
	if llmErr != nil {
		outcome = "llm_error"
	}
	metrics.AsksTotal.WithLabelValues(outcome).Inc()
	for _, a := range resp.Attachments {
		metrics.RecordAttachments(string(a.Kind), 1)
	}

	s.publishEvent(ctx, resp, conv, scope, raceReplayed, start)
	return resp, nil
}

// resolveConversation loads the target conversation or creates one, and
// opportunistically persists changed settings.
func (s *AskService) resolveConversation(ctx context.Context, req *model.AskRequest, topK int) (*model.Conversation, error) {
	if req.ConversationID == "" {
		conv := &model.Conversation{
			Title: truncate(req.Question, 80),
			Model: s.modelFor(req, nil),
			TopK:  topK,
		}
		conv.SetDocIDs(nil)
		if req.DocIDs != nil {
			conv.SetDocIDs(*req.DocIDs)
		}
		if err := s.convs.Create(ctx, conv); err != nil {
			return nil, err
		}
		return conv, nil
	}

	conv, err := s.convs.Get(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Model != "" && req.Model != conv.Model {
		conv.Model = req.Model
		changed = true
	}
	if req.TopK > 0 && topK != conv.TopK {
		conv.TopK = topK
		changed = true
	}
	if req.DocIDs != nil {
		conv.SetDocIDs(*req.DocIDs)
		changed = true
	}
	if changed {
		if err := s.convs.SaveSettings(ctx, conv); err != nil {
			// Settings are a convenience; the turn proceeds without them.
			s.logger.Warn("failed to persist conversation settings",
				zap.String("conversation_id", conv.ID), zap.Error(err))
		}
	}
	return conv, nil
}

// resolveScope returns the sanitized document scope for this turn. An
// explicit scope with unknown or unready ids fails validation before any
// retrieval work. Ids from the persisted conversation scope are held to a
// softer standard: documents deleted or re-ingested since the scope was
// pinned are silently dropped and the sanitized scope is written back, so
// the conversation keeps working.
func (s *AskService) resolveScope(ctx context.Context, req *model.AskRequest, conv *model.Conversation) ([]string, error) {
	explicit := req.DocIDs != nil

	var docIDs []string
	if explicit {
		docIDs = *req.DocIDs
	} else {
		docIDs = conv.DocIDList()
	}
	if len(docIDs) == 0 {
		return nil, nil
	}

	ready, err := s.docs.ReadyIDs(ctx)
	if err != nil {
		return nil, err
	}

	var invalid []string
	seen := make(map[string]bool, len(docIDs))
	valid := make([]string, 0, len(docIDs))
	for _, id := range docIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if ready[id] {
			valid = append(valid, id)
		} else {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) == 0 {
		return valid, nil
	}
	if explicit {
		return nil, &rag.ValidationError{InvalidDocIDs: invalid}
	}

	s.logger.Warn("dropping stale document ids from conversation scope",
		zap.String("conversation_id", conv.ID),
		zap.Strings("doc_ids", invalid))
	conv.SetDocIDs(valid)
	if err := s.convs.SaveSettings(ctx, conv); err != nil {
		s.logger.Warn("failed to persist sanitized conversation scope",
			zap.String("conversation_id", conv.ID), zap.Error(err))
	}
	return valid, nil
}

// selectAttachments assembles the candidate list and applies the policy.
// The single best image, when images were merely allowed, bypasses the
// policy and is appended afterwards.
func (s *AskService) selectAttachments(intent model.Intent, assembly *rag.ContextAssembly, imageRes *rag.ImageResolution, tableRes *rag.TableResolution) []model.AttachmentCandidate {
	var candidates []model.AttachmentCandidate

	if tableRes != nil {
		for _, ref := range tableRes.Representatives {
			candidates = append(candidates, model.AttachmentCandidate{
				Kind: model.KindTable, Path: ref.Path, Title: ref.Title,
			})
		}
	}
	if intent.AllowTable && assembly.FirstTablePath != "" {
		candidates = append(candidates, model.AttachmentCandidate{
			Kind: model.KindTable, Path: assembly.FirstTablePath, Title: "table",
		})
	}
	for _, ref := range imageRes.Refs {
		candidates = append(candidates, model.AttachmentCandidate{
			Kind: model.KindImage, Path: ref.Path, Title: ref.Title,
		})
	}

	selected := rag.SelectAttachments(intent, candidates)

	if intent.AllowImage && !intent.WantAllImages && imageRes.FirstPath != "" {
		selected = append(selected, model.AttachmentCandidate{
			Kind: model.KindImage, Path: imageRes.FirstPath, Title: "image",
		})
	}
	return selected
}

// answerTurn produces the answer text, calling the model when there is
// anything to answer from. Model failures are absorbed: the turn completes
// with an explanatory answer and the retrieved context intact.
func (s *AskService) answerTurn(
	ctx context.Context,
	req *model.AskRequest,
	conv *model.Conversation,
	intent model.Intent,
	assembly *rag.ContextAssembly,
	imageRes *rag.ImageResolution,
	tableRes *rag.TableResolution,
	attachments []model.AttachmentCandidate,
) (string, error) {
	if len(assembly.Points) == 0 && len(attachments) == 0 {
		return answerNoContext, nil
	}

	history := s.historyFor(ctx, req, conv)

	tableCatalog := ""
	if tableRes != nil {
		tableCatalog = tableRes.Catalog
	}
	prompt := rag.BuildUserPrompt(req.Question, assembly, intent, imageRes.Titles, tableCatalog)

	modelName := s.modelFor(req, conv)
	llmStart := time.Now()
	resp, err := s.llm.Complete(ctx, &llm.CompletionRequest{
		Model:    modelName,
		System:   rag.SystemPrompt,
		History:  history,
		UserText: prompt,
		Images:   imageRes.Bytes,
	})
	if err != nil {
		metrics.RecordCompletion(modelName, "error", time.Since(llmStart).Seconds(), 0, 0)
		s.logger.Error("language model call failed",
			zap.String("conversation_id", conv.ID),
			zap.String("model", modelName),
			zap.Error(err))
		return answerLLMFailed, &rag.LanguageModelError{Err: err}
	}
	metrics.RecordCompletion(resp.Model, "ok", time.Since(llmStart).Seconds(), resp.TokensIn, resp.TokensOut)

	answer := resp.Content
	if intent.WantsAll() {
		answer = wantAllSummary(attachments, tableRes) + answer
	}
	if intent.AllowImage && !intent.WantAllImages && imageRes.FirstPath == "" {
		answer += "\n\n" + noteNoImage
	}
	return answer, nil
}

// wantAllSummary prefixes exhaustive answers with the attachment counts and
// any collapsed duplicate groups.
func wantAllSummary(attachments []model.AttachmentCandidate, tableRes *rag.TableResolution) string {
	var images, tables int
	for _, a := range attachments {
		switch a.Kind {
		case model.KindImage:
			images++
		case model.KindTable:
			tables++
		}
	}
	summary := fmt.Sprintf("Found %d image(s) and %d table(s) in the selected documents.\n\n", images, tables)
	if tableRes != nil {
		if note := rag.DuplicateNote(tableRes.Duplicates); note != "" {
			summary += "Duplicated tables were collapsed:\n" + note + "\n\n"
		}
	}
	return summary
}

func (s *AskService) historyFor(ctx context.Context, req *model.AskRequest, conv *model.Conversation) []llm.ChatMessage {
	if len(req.History) > 0 {
		out := make([]llm.ChatMessage, 0, len(req.History))
		for _, h := range req.History {
			out = append(out, llm.ChatMessage{Role: h.Role, Content: h.Content})
		}
		return out
	}

	msgs, err := s.convs.History(ctx, conv.ID, s.cfg.HistoryLimit)
	if err != nil {
		s.logger.Warn("failed to load conversation history",
			zap.String("conversation_id", conv.ID), zap.Error(err))
		return nil
	}
	out := make([]llm.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

// persistTurn writes the completed turn. When a concurrent retry won the
// insert race, the winner's stored answer is returned instead of ours.
func (s *AskService) persistTurn(
	ctx context.Context,
	req *model.AskRequest,
	conv *model.Conversation,
	intent model.Intent,
	assembly *rag.ContextAssembly,
	answer string,
	attachments []model.AttachmentCandidate,
) (*model.AskResponse, bool, error) {
	extra, err := json.Marshal(turnExtra{Context: assembly.Points, Intent: intent})
	if err != nil {
		return nil, false, fmt.Errorf("failed to snapshot turn context: %w", err)
	}

	var clientMID *string
	if req.ClientMessageID != "" {
		clientMID = &req.ClientMessageID
	}

	userMsg := &model.Message{
		ConversationID:  conv.ID,
		Role:            model.RoleUser,
		Content:         req.Question,
		ClientMessageID: clientMID,
	}
	assistantMsg := &model.Message{
		ConversationID:  conv.ID,
		Role:            model.RoleAssistant,
		Content:         answer,
		ClientMessageID: clientMID,
		Extra:           extra,
	}
	for _, a := range attachments {
		path := a.Path
		switch a.Kind {
		case model.KindTable:
			if assistantMsg.TablePath == nil {
				assistantMsg.TablePath = &path
			}
		case model.KindImage:
			if assistantMsg.ImagePath == nil {
				assistantMsg.ImagePath = &path
			}
		}
	}

	rows := make([]model.Attachment, 0, len(attachments))
	for _, a := range attachments {
		rows = append(rows, model.Attachment{
			Kind:  a.Kind,
			Path:  a.Path,
			Title: a.Title,
		})
	}

	winner, replayed, err := s.convs.RecordTurn(ctx, userMsg, assistantMsg, rows)
	if err != nil {
		return nil, false, err
	}
	if replayed {
		metrics.IdempotentReplaysTotal.Inc()
		return responseFromMessage(conv.ID, winner), true, nil
	}

	return &model.AskResponse{
		Answer:             answer,
		Context:            assembly.Points,
		ConversationID:     conv.ID,
		AssistantMessageID: winner.ID,
		Attachments:        attachments,
	}, false, nil
}

// responseFromMessage rebuilds the original ask response from a persisted
// assistant message.
func responseFromMessage(convID string, msg *model.Message) *model.AskResponse {
	var extra turnExtra
	if len(msg.Extra) > 0 {
		_ = json.Unmarshal(msg.Extra, &extra)
	}
	if extra.Context == nil {
		extra.Context = []model.ContextPoint{}
	}

	attachments := make([]model.AttachmentCandidate, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		attachments = append(attachments, model.AttachmentCandidate{
			Kind:  a.Kind,
			Path:  a.Path,
			Title: a.Title,
		})
	}

	return &model.AskResponse{
		Answer:             msg.Content,
		Context:            extra.Context,
		ConversationID:     convID,
		AssistantMessageID: msg.ID,
		Attachments:        attachments,
	}
}

func (s *AskService) publishEvent(ctx context.Context, resp *model.AskResponse, conv *model.Conversation, scope []string, replayed bool, start time.Time) {
	if s.publisher == nil {
		return
	}
	s.publisher.TurnCompleted(ctx, &events.TurnEvent{
		ConversationID:     conv.ID,
		AssistantMessageID: resp.AssistantMessageID,
		Model:              conv.Model,
		DocIDs:             scope,
		ContextPoints:      len(resp.Context),
		Attachments:        len(resp.Attachments),
		Replayed:           replayed,
		LatencyMs:          time.Since(start).Milliseconds(),
		CompletedAt:        time.Now().UTC(),
	})
}

func (s *AskService) modelFor(req *model.AskRequest, conv *model.Conversation) string {
	if req.Model != "" {
		return req.Model
	}
	if conv != nil && conv.Model != "" && conv.Model != "default" {
		return conv.Model
	}
	return s.cfg.DefaultModel
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
