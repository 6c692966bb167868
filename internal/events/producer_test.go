package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs        []kafka.Message
	err         error
	closed      bool
	hasDeadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.hasDeadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_Publish_EncodesEvent(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w := &fakeWriter{}
	p := &Producer{writer: w, now: func() time.Time { return fixed }}

	err := p.Publish(context.Background(), TopicProducts, Event{
		Type: "product_created",
		Key:  "7",
		Data: map[string]any{"slug": "sunset"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.True(t, w.hasDeadline, "publish must carry a deadline")

	msg := w.msgs[0]
	assert.Equal(t, TopicProducts, msg.Topic)
	assert.Equal(t, "7", string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "product_created", got["type"])
	assert.Equal(t, "2024-05-01T12:00:00Z", got["occurred_at"])
	assert.Equal(t, map[string]any{"slug": "sunset"}, got["data"])
}

func TestProducer_Publish_WrapsWriterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broker down")
	p := &Producer{writer: &fakeWriter{err: boom}, now: time.Now}

	err := p.Publish(context.Background(), TopicAccounts, Event{Type: "user_registered"})
	assert.ErrorIs(t, err, boom)
}

func TestProducer_Close(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	require.NoError(t, (&Producer{writer: w}).Close())
	assert.True(t, w.closed)
}

func TestNew_NopWithoutBrokers(t *testing.T) {
	t.Parallel()

	pub := New(nil)
	assert.IsType(t, Nop{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), TopicProducts, Event{}))
	assert.NoError(t, pub.Close())

	assert.IsType(t, &Producer{}, New([]string{"localhost:9092"}))
}
