package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Conversation is a chat thread with persisted settings. The model name,
// top_k and the selected document scope survive across turns and are
// updated opportunistically whenever the caller supplies a new value.
type Conversation struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Title string `gorm:"size:255" json:"title"`
	Scope string `gorm:"size:64;default:'default'" json:"scope"`

	Model string `gorm:"size:128;default:'default'" json:"model"`
	TopK  int    `gorm:"default:5" json:"top_k"`

	Deleted   bool       `gorm:"default:false;index" json:"deleted,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// Ordered document-id scope, stored as a JSON array.
	DocIDs datatypes.JSON `json:"doc_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

// DocIDList decodes the persisted document scope. A missing or malformed
// column reads as an empty scope.
func (c *Conversation) DocIDList() []string {
	if len(c.DocIDs) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(c.DocIDs, &ids); err != nil {
		return nil
	}
	return ids
}

// SetDocIDs encodes the document scope for persistence.
func (c *Conversation) SetDocIDs(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	raw, _ := json.Marshal(ids)
	c.DocIDs = raw
}

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one side of a conversational turn. Messages are created once
// and never mutated. The unique index on (conversation_id, role,
// client_message_id) is what makes retried turns at-most-once; rows with a
// NULL token are exempt, which is why ClientMessageID is a pointer.
type Message struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID string `gorm:"type:uuid;not null;uniqueIndex:uniq_conv_role_client_mid,priority:1" json:"conversation_id"`

	Role    Role   `gorm:"size:16;not null;uniqueIndex:uniq_conv_role_client_mid,priority:2" json:"role"`
	Content string `gorm:"type:text" json:"content"`

	ClientMessageID *string `gorm:"size:64;uniqueIndex:uniq_conv_role_client_mid,priority:3" json:"client_message_id,omitempty"`

	// Backward-compat single attachment locators; the full set lives in
	// the Attachment rows.
	TablePath *string `gorm:"type:text" json:"table_path,omitempty"`
	ImagePath *string `gorm:"type:text" json:"image_path,omitempty"`

	// Extra carries the retrieval context and intent snapshot of the turn.
	Extra datatypes.JSON `json:"extra,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Attachments []Attachment `gorm:"foreignKey:MessageID" json:"attachments,omitempty"`
}

// Attachment is a table or image surfaced alongside an answer. The unique
// key (message_id, kind, path) prevents duplicate rows on retry.
type Attachment struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID string `gorm:"type:uuid;not null;uniqueIndex:uniq_msg_kind_path,priority:1" json:"message_id"`

	Kind     AssetKind         `gorm:"size:32;not null;uniqueIndex:uniq_msg_kind_path,priority:2" json:"kind"`
	Path     string            `gorm:"type:text;not null;uniqueIndex:uniq_msg_kind_path,priority:3" json:"path"`
	Title    string            `gorm:"size:255" json:"title"`
	MimeType string            `gorm:"size:127" json:"mime_type,omitempty"`
	Meta     datatypes.JSONMap `json:"meta,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
