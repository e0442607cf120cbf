package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// ErrConversationNotFound is returned when a conversation id does not
// resolve to a live conversation.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationStore persists conversations and turn records.
type ConversationStore struct {
	db *gorm.DB
}

// NewConversationStore creates a new conversation store.
func NewConversationStore(db *gorm.DB) *ConversationStore {
	return &ConversationStore{db: db}
}

// Get returns a live conversation by id.
func (s *ConversationStore) Get(ctx context.Context, id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := s.db.WithContext(ctx).First(&conv, "id = ? AND deleted = false", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conv, nil
}

// Create persists a new conversation.
func (s *ConversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(conv).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// List returns live conversations, most recently updated first.
func (s *ConversationStore) List(ctx context.Context, limit, offset int) ([]model.Conversation, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("deleted = false").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count conversations: %w", err)
	}

	var convs []model.Conversation
	err := s.db.WithContext(ctx).
		Where("deleted = false").
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&convs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, total, nil
}

// SaveSettings updates the persisted per-conversation settings.
func (s *ConversationStore) SaveSettings(ctx context.Context, conv *model.Conversation) error {
	err := s.db.WithContext(ctx).Model(conv).
		Select("model", "top_k", "doc_ids", "updated_at").
		Updates(map[string]interface{}{
			"model":   conv.Model,
			"top_k":   conv.TopK,
			"doc_ids": conv.DocIDs,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to save conversation settings: %w", err)
	}
	return nil
}

// SoftDelete marks a conversation deleted without dropping its history.
func (s *ConversationStore) SoftDelete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ? AND deleted = false", id).
		Updates(map[string]interface{}{
			"deleted":    true,
			"deleted_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to delete conversation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

// History returns the persisted messages of a conversation in turn order.
func (s *ConversationStore) History(ctx context.Context, convID string, limit int) ([]model.Message, error) {
	var msgs []model.Message
	q := s.db.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Order("created_at ASC")
	if limit > 0 {
		// Keep the most recent turns when the thread is long.
		var total int64
		if err := s.db.WithContext(ctx).Model(&model.Message{}).
			Where("conversation_id = ?", convID).Count(&total).Error; err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}
		if int(total) > limit {
			q = q.Offset(int(total) - limit)
		}
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return msgs, nil
}

// FindAssistantMessage looks up a previously persisted assistant turn by
// its client message id. A hit means the turn is a retry and the stored
// answer is replayed instead of calling the language model again.
func (s *ConversationStore) FindAssistantMessage(ctx context.Context, convID, clientMessageID string) (*model.Message, error) {
	if clientMessageID == "" {
		return nil, nil
	}
	var msg model.Message
	err := s.db.WithContext(ctx).
		Preload("Attachments").
		Where("conversation_id = ? AND role = ? AND client_message_id = ?",
			convID, model.RoleAssistant, clientMessageID).
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up assistant message: %w", err)
	}
	return &msg, nil
}

// RecordTurn persists a completed turn atomically: the user message, the
// assistant message and its attachments. Concurrent retries carrying the
// same client message id race on the unique key; exactly one insert wins
// and every loser is handed the winner's row, so callers always return
// the same persisted answer. The returned bool reports whether this call
// lost the race.
func (s *ConversationStore) RecordTurn(ctx context.Context, userMsg, assistantMsg *model.Message, attachments []model.Attachment) (*model.Message, bool, error) {
	if userMsg.ID == "" {
		userMsg.ID = uuid.New().String()
	}
	if assistantMsg.ID == "" {
		assistantMsg.ID = uuid.New().String()
	}

	var winner model.Message
	replayed := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The user side is insert-if-absent; a retry already wrote it.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(userMsg).Error; err != nil {
			return fmt.Errorf("failed to persist user message: %w", err)
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(assistantMsg)
		if res.Error != nil {
			return fmt.Errorf("failed to persist assistant message: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost the race; adopt the winning row.
			replayed = true
			err := tx.Preload("Attachments").
				Where("conversation_id = ? AND role = ? AND client_message_id = ?",
					assistantMsg.ConversationID, model.RoleAssistant, assistantMsg.ClientMessageID).
				First(&winner).Error
			if err != nil {
				return fmt.Errorf("failed to load winning assistant message: %w", err)
			}
			return nil
		}

		winner = *assistantMsg
		for i := range attachments {
			attachments[i].MessageID = assistantMsg.ID
			if attachments[i].ID == "" {
				attachments[i].ID = uuid.New().String()
			}
		}
		if len(attachments) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&attachments).Error; err != nil {
				return fmt.Errorf("failed to persist attachments: %w", err)
			}
		}
		winner.Attachments = attachments

		// Touch the conversation so listing orders by activity.
		if err := tx.Model(&model.Conversation{}).
			Where("id = ?", assistantMsg.ConversationID).
			Update("updated_at", gorm.Expr("NOW()")).Error; err != nil {
			return fmt.Errorf("failed to touch conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &winner, replayed, nil
}
