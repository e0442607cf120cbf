package model

// HistoryEntry is one prior turn supplied by the caller.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AskRequest is the request body for POST /rag/ask.
type AskRequest struct {
	Question        string `json:"question"`
	TopK            int    `json:"top_k,omitempty"`
	Model           string `json:"model,omitempty"`
	ConversationID  string `json:"conversation_id,omitempty"`
	ClientMessageID string `json:"client_message_id,omitempty"`

	// A nil DocIDs means the field was absent and the persisted
	// conversation scope applies; an empty slice is an explicit empty
	// selection.
	DocIDs *[]string `json:"doc_ids,omitempty"`

	History []HistoryEntry `json:"history,omitempty"`
}

// AskResponse is the response body for POST /rag/ask. Re-posting the same
// (conversation_id, client_message_id) returns this payload unchanged.
type AskResponse struct {
	Answer             string                `json:"answer"`
	Context            []ContextPoint        `json:"context"`
	ConversationID     string                `json:"conversation_id"`
	AssistantMessageID string                `json:"assistant_message_id"`
	Attachments        []AttachmentCandidate `json:"attachments"`
}

// ModelInfo describes one configured language model for UI pickers.
type ModelInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// UpdateDocsRequest is the request to replace a conversation's document scope.
type UpdateDocsRequest struct {
	DocIDs []string `json:"doc_ids"`
}

// DocsResponse reports the sanitized scope; invalid ids are reported, not
// rejected.
type DocsResponse struct {
	DocIDs        []string `json:"doc_ids"`
	InvalidDocIDs []string `json:"invalid_doc_ids"`
}

// CreateConversationRequest is the request to create a conversation.
type CreateConversationRequest struct {
	Title string `json:"title"`
	Model string `json:"model,omitempty"`
	TopK  int    `json:"top_k,omitempty"`
}

// ListConversationsResponse is the response for listing conversations.
type ListConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
	Total         int            `json:"total"`
}
