package service

import (
	"context"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// ConversationAdminRepo is the persistence surface for conversation
// management endpoints.
type ConversationAdminRepo interface {
	Get(ctx context.Context, id string) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation) error
	List(ctx context.Context, limit, offset int) ([]model.Conversation, int64, error)
	SaveSettings(ctx context.Context, conv *model.Conversation) error
	SoftDelete(ctx context.Context, id string) error
	History(ctx context.Context, convID string, limit int) ([]model.Message, error)
}

// ConversationService manages conversation lifecycle and settings.
type ConversationService struct {
	convs ConversationAdminRepo
	docs  DocumentRepo
}

// NewConversationService creates a new conversation service.
func NewConversationService(convs ConversationAdminRepo, docs DocumentRepo) *ConversationService {
	return &ConversationService{convs: convs, docs: docs}
}

// Create starts a new conversation with the given settings.
func (s *ConversationService) Create(ctx context.Context, req *model.CreateConversationRequest) (*model.Conversation, error) {
	conv := &model.Conversation{
		Title: req.Title,
		Model: req.Model,
		TopK:  req.TopK,
	}
	if conv.Title == "" {
		conv.Title = "New conversation"
	}
	if conv.Model == "" {
		conv.Model = "default"
	}
	if conv.TopK <= 0 {
		conv.TopK = 5
	}
	conv.SetDocIDs(nil)
	if err := s.convs.Create(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// Get returns one live conversation.
func (s *ConversationService) Get(ctx context.Context, id string) (*model.Conversation, error) {
	return s.convs.Get(ctx, id)
}

// List returns live conversations, most recently active first.
func (s *ConversationService) List(ctx context.Context, limit, offset int) (*model.ListConversationsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	convs, total, err := s.convs.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &model.ListConversationsResponse{
		Conversations: convs,
		Total:         int(total),
	}, nil
}

// Delete soft-deletes a conversation; its history stays queryable.
func (s *ConversationService) Delete(ctx context.Context, id string) error {
	return s.convs.SoftDelete(ctx, id)
}

// Messages returns the message history of a conversation in turn order.
func (s *ConversationService) Messages(ctx context.Context, id string, limit int) ([]model.Message, error) {
	if _, err := s.convs.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.convs.History(ctx, id, limit)
}

// UpdateDocs replaces a conversation's document scope. Ids that are
// unknown or not ready are dropped and reported rather than rejected, so
// a stale selection degrades instead of breaking the conversation.
func (s *ConversationService) UpdateDocs(ctx context.Context, id string, req *model.UpdateDocsRequest) (*model.DocsResponse, error) {
	conv, err := s.convs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ready, err := s.docs.ReadyIDs(ctx)
	if err != nil {
		return nil, err
	}

	valid := []string{}
	invalid := []string{}
	seen := make(map[string]bool, len(req.DocIDs))
	for _, docID := range req.DocIDs {
		if seen[docID] {
			continue
		}
		seen[docID] = true
		if ready[docID] {
			valid = append(valid, docID)
		} else {
			invalid = append(invalid, docID)
		}
	}

	conv.SetDocIDs(valid)
	if err := s.convs.SaveSettings(ctx, conv); err != nil {
		return nil, err
	}

	return &model.DocsResponse{DocIDs: valid, InvalidDocIDs: invalid}, nil
}
