package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/campaign-links/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published  map[string][]*message.Message
	publishErr error
	closeErr   error
}

func (p *recordingPublisher) Publish(topic string, msgs ...*message.Message) error {
	if p.publishErr != nil {
		return p.publishErr
	}

	if p.published == nil {
		p.published = map[string][]*message.Message{}
	}

	p.published[topic] = append(p.published[topic], msgs...)

	return nil
}

func (p *recordingPublisher) Close() error {
	return p.closeErr
}

type ctxKey struct{}

func TestNewPublishFunc(t *testing.T) {
	t.Run("encodes the event with topic metadata", func(t *testing.T) {
		pub := &recordingPublisher{}
		publish := messaging.NewPublishFunc[testEvent](pub, "link.shortened")
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		before := time.Now().UTC()

		require.NoError(t, publish(ctx, &testEvent{ID: "abc", Name: "launch"}))

		msgs := pub.published["link.shortened"]
		require.Len(t, msgs, 1)

		var decoded testEvent
		require.NoError(t, json.Unmarshal(msgs[0].Payload, &decoded))
		assert.Equal(t, testEvent{ID: "abc", Name: "launch"}, decoded)
		assert.Equal(t, "link.shortened", msgs[0].Metadata.Get(messaging.MetadataTopic))
		assert.Equal(t, "req-1", msgs[0].Context().Value(ctxKey{}))

		publishedAt, err := time.Parse(time.RFC3339Nano, msgs[0].Metadata.Get(messaging.MetadataPublishedAt))
		require.NoError(t, err)
		assert.False(t, publishedAt.Before(before.Truncate(time.Second)))
	})

	t.Run("gives every message its own id", func(t *testing.T) {
		pub := &recordingPublisher{}
		publish := messaging.NewPublishFunc[testEvent](pub, "link.deleted")

		require.NoError(t, publish(context.Background(), &testEvent{ID: "1"}))
		require.NoError(t, publish(context.Background(), &testEvent{ID: "1"}))

		msgs := pub.published["link.deleted"]
		require.Len(t, msgs, 2)
		assert.NotEqual(t, msgs[0].UUID, msgs[1].UUID)
	})

	t.Run("wraps publisher errors with the topic", func(t *testing.T) {
		pub := &recordingPublisher{publishErr: errors.New("connection reset")}
		publish := messaging.NewPublishFunc[testEvent](pub, "link.generated")

		err := publish(context.Background(), &testEvent{ID: "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish link.generated event")
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestDiscard(t *testing.T) {
	publish := messaging.Discard[testEvent]()

	require.NoError(t, publish(context.Background(), &testEvent{ID: "1"}))
}

func TestPublisherGroup(t *testing.T) {
	t.Run("exposes publisher and backend", func(t *testing.T) {
		pub := &recordingPublisher{}
		group := messaging.NewPublisherGroup(pub, messaging.BackendRedis)

		assert.Same(t, pub, group.Publisher())
		assert.Equal(t, messaging.BackendRedis, group.Backend())
	})

	t.Run("closes the publisher on shutdown", func(t *testing.T) {
		group := messaging.NewPublisherGroup(&recordingPublisher{closeErr: errors.New("close error")}, messaging.BackendGoChannel)

		assert.Error(t, group.Shutdown())
	})
}
