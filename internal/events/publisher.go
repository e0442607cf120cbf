package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
)

const (
	// StreamName is the name of the query events stream.
	StreamName = "RAG_EVENTS"

	// SubjectPrefix is the prefix for all query event subjects.
	SubjectPrefix = "rag"

	// SubjectTurnCompleted carries one event per persisted turn.
	SubjectTurnCompleted = "rag.turn.completed"
)

// TurnEvent describes one completed ask turn. Consumers use it for
// analytics and cache warming; it never carries answer text.
type TurnEvent struct {
	ConversationID     string    `json:"conversation_id"`
	AssistantMessageID string    `json:"assistant_message_id"`
	Model              string    `json:"model"`
	DocIDs             []string  `json:"doc_ids,omitempty"`
	ContextPoints      int       `json:"context_points"`
	Attachments        int       `json:"attachments"`
	Replayed           bool      `json:"replayed"`
	LatencyMs          int64     `json:"latency_ms"`
	CompletedAt        time.Time `json:"completed_at"`
}

// Publisher emits turn events. Publishing is best effort: the turn is
// already persisted by the time an event goes out, so failures are
// logged and swallowed.
type Publisher struct {
	client *Client
	logger *logger.Logger
}

// NewPublisher creates a publisher and ensures the stream exists.
func NewPublisher(ctx context.Context, client *Client, log *logger.Logger) (*Publisher, error) {
	p := &Publisher{client: client, logger: log}
	if err := p.ensureStream(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) ensureStream(ctx context.Context) error {
	js := p.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Query engine turn events",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

// TurnCompleted publishes a turn-completed event.
func (p *Publisher) TurnCompleted(ctx context.Context, event *TurnEvent) {
	if p == nil || p.client == nil || !p.client.IsConnected() {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("failed to marshal turn event", zap.Error(err))
		return
	}

	if _, err := p.client.JetStream().Publish(ctx, SubjectTurnCompleted, data); err != nil {
		p.logger.Warn("failed to publish turn event",
			zap.String("conversation_id", event.ConversationID),
			zap.Error(err))
	}
}
