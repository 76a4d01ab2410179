// Package producer publishes leave lifecycle events. Publishing is
// best-effort: a broker failure is logged and never fails the user action
// that triggered it.
package producer

import (
	"context"
	"encoding/json"

	"go-outpass/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewPublisher wraps a kafka writer; a nil writer disables publishing.
func NewPublisher(writer *kafkago.Writer, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.producer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer")
	}
	return &Publisher{writer: writer, logger: l}
}

func (p *Publisher) PublishLifecycle(ctx context.Context, event events.LeaveLifecycleEvent) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal lifecycle event failed", zap.Error(err))
		return
	}

	msg := kafkago.Message{
		Topic: events.LeaveLifecycleTopic,
		Key:   []byte(event.StudentID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish lifecycle event failed",
			zap.String("event_type", event.EventType),
			zap.String("student_id", event.StudentID),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("lifecycle event published",
		zap.String("event_type", event.EventType),
		zap.String("student_id", event.StudentID),
	)
}
