package middleware

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateQuestion validates a question body.
func ValidateQuestion(question string) error {
	if len(question) == 0 {
		return errors.New("question cannot be empty")
	}
	if len(question) > 100000 { // ~100KB limit
		return errors.New("question exceeds maximum length")
	}
	if !utf8.ValidString(question) {
		return errors.New("question must be valid UTF-8")
	}
	return nil
}

// ValidateConversationID validates a conversation ID.
func ValidateConversationID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid conversation ID format")
	}
	return nil
}

// ValidateTopK validates a retrieval depth. Zero means "use the default".
func ValidateTopK(topK, max int) error {
	if topK < 0 || topK > max {
		return fmt.Errorf("top_k must be between 1 and %d", max)
	}
	return nil
}

// ValidateTitle validates a conversation title.
func ValidateTitle(title string) error {
	if len(title) > 256 {
		return errors.New("title exceeds maximum length")
	}
	if !utf8.ValidString(title) {
		return errors.New("title must be valid UTF-8")
	}
	return nil
}
