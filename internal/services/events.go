package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublishTimeout bounds a single write to the broker.
const PublishTimeout = 5 * time.Second

// AfterCommitFunc defers fn until the transaction carried by ctx commits.
// It reports false when there is nothing to wait for.
type AfterCommitFunc func(ctx context.Context, fn func()) bool

// EventPublisher sends article lifecycle events to Kafka.
// A publisher without a writer drops events.
type EventPublisher struct {
	writer      KafkaWriter
	afterCommit AfterCommitFunc
	timeout     time.Duration
	now         func() time.Time
}

// NewEventPublisher builds a publisher. When afterCommit is set, events raised
// inside a transaction are only sent once it commits.
func NewEventPublisher(writer KafkaWriter, afterCommit AfterCommitFunc) *EventPublisher {
	return &EventPublisher{
		writer:      writer,
		afterCommit: afterCommit,
		timeout:     PublishTimeout,
		now:         time.Now,
	}
}

// Publish is best effort: failures are logged and never reach the caller.
func (p *EventPublisher) Publish(ctx context.Context, operation string, articleID, userID uuid.UUID) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "article_id", articleID, "operation", operation)
		return
	}

	event := models.ArticleEvent{
		EventID:   uuid.NewString(),
		Timestamp: p.now().Unix(),
		ArticleID: articleID.String(),
		UserID:    userID.String(),
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal article event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ArticleID),
		Value: data,
	}

	send := func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()

		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish article event", "event_id", event.EventID, "error", err)
			return
		}
		logger.Log.Infow("Article event published", "event_id", event.EventID, "article_id", event.ArticleID, "operation", operation)
	}

	if p.afterCommit != nil && p.afterCommit(ctx, send) {
		return
	}
	send()
}
