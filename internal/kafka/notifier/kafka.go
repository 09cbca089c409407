package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"elevation-service/internal/config"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	EventSubmitted = "application.submitted"
	EventApproved  = "application.approved"
	EventRejected  = "application.rejected"

	eventTypeHeader = "X-Event-Type"
	protoTypeHeader = "X-Proto-Type"
)

// messageWriter is the subset of *kafka.Writer used by the notifier.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      messageWriter
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	n := &kafkaNotifier{logger: logger}

	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       cfg.Topic,
		Async:       true,
		Balancer:    &kafka.Hash{},
		ErrorLogger: zap.NewStdLog(logger.Desugar()),
		// async writes return before delivery, failures only surface here
		Completion: n.onCompletion,
	}
	n.w = w

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return n
}

func (k *kafkaNotifier) onCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}

	for _, msg := range messages {
		deliveryFailuresTotal.WithLabelValues(headerValue(msg, eventTypeHeader)).Inc()
		k.logger.Errorw("failed to deliver notification",
			"event", headerValue(msg, eventTypeHeader),
			"playerId", string(msg.Key),
			"error", err,
		)
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (k *kafkaNotifier) ApplicationSubmitted(ctx context.Context, playerId uuid.UUID, role model.Role) error {
	return k.publish(ctx, EventSubmitted, playerId, map[string]any{
		"role": role.String(),
	})
}

func (k *kafkaNotifier) ApplicationApproved(ctx context.Context, playerId uuid.UUID, role model.Role) error {
	return k.publish(ctx, EventApproved, playerId, map[string]any{
		"role": role.String(),
	})
}

func (k *kafkaNotifier) ApplicationRejected(ctx context.Context, playerId uuid.UUID, role model.Role, reason string) error {
	return k.publish(ctx, EventRejected, playerId, map[string]any{
		"role":   role.String(),
		"reason": reason,
	})
}

func (k *kafkaNotifier) publish(ctx context.Context, event string, playerId uuid.UUID, payload map[string]any) error {
	payload["playerId"] = playerId.String()
	payload["sentAt"] = time.Now().UTC().Format(time.RFC3339)

	msg, err := structpb.NewStruct(payload)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	if err := k.publishMessage(ctx, event, playerId, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) publishMessage(ctx context.Context, event string, playerId uuid.UUID, message proto.Message) error {
	bytes, err := proto.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(playerId.String()),
		Value: bytes,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event)},
			{Key: protoTypeHeader, Value: []byte(message.ProtoReflect().Descriptor().FullName())},
		},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
