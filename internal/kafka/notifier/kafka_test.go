package notifier

import (
	"context"
	"errors"
	"testing"

	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (r *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msgs...)
	return nil
}

func TestKafkaNotifier_ApplicationRejected(t *testing.T) {
	w := &recordingWriter{}
	n := &kafkaNotifier{logger: zap.NewNop().Sugar(), w: w}
	playerId := uuid.New()

	err := n.ApplicationRejected(context.Background(), playerId, model.RolePro, "Rank too low")
	assert.NoError(t, err)
	assert.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, playerId.String(), string(msg.Key))
	assert.Equal(t, EventRejected, headerValue(msg, eventTypeHeader))
	assert.Equal(t, "google.protobuf.Struct", headerValue(msg, protoTypeHeader))

	var payload structpb.Struct
	assert.NoError(t, proto.Unmarshal(msg.Value, &payload))
	fields := payload.AsMap()
	assert.Equal(t, "PRO", fields["role"])
	assert.Equal(t, "Rank too low", fields["reason"])
	assert.Equal(t, playerId.String(), fields["playerId"])
}

func TestKafkaNotifier_ApplicationApproved(t *testing.T) {
	w := &recordingWriter{}
	n := &kafkaNotifier{logger: zap.NewNop().Sugar(), w: w}

	err := n.ApplicationApproved(context.Background(), uuid.New(), model.RoleTrainer)
	assert.NoError(t, err)
	assert.Len(t, w.messages, 1)
	assert.Equal(t, EventApproved, headerValue(w.messages[0], eventTypeHeader))
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	n := &kafkaNotifier{logger: zap.NewNop().Sugar(), w: &recordingWriter{err: writeErr}}

	err := n.ApplicationSubmitted(context.Background(), uuid.New(), model.RolePro)
	assert.ErrorIs(t, err, writeErr)
}

func TestKafkaNotifier_OnCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	n := &kafkaNotifier{logger: zap.New(core).Sugar()}
	playerId := uuid.New()
	msg := kafka.Message{
		Key:     []byte(playerId.String()),
		Headers: []kafka.Header{{Key: eventTypeHeader, Value: []byte(EventApproved)}},
	}

	n.onCompletion([]kafka.Message{msg}, nil)
	assert.Equal(t, 0, logs.Len())

	n.onCompletion([]kafka.Message{msg}, errors.New("leader not available"))
	entries := logs.FilterMessage("failed to deliver notification").All()
	assert.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, EventApproved, fields["event"])
	assert.Equal(t, playerId.String(), fields["playerId"])
}
