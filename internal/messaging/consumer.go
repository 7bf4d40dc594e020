package messaging

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Handler processes a single event.
type Handler[T any] func(ctx context.Context, event *T) error

// ConsumerStats counts message outcomes for one consumer.
type ConsumerStats struct {
	Topic     string `json:"topic"`
	Processed int64  `json:"processed"`
	Dropped   int64  `json:"dropped"`
	Failed    int64  `json:"failed"`
}

// Consumer decodes JSON messages from one topic and hands them to a typed handler.
// Handler errors nack the message for redelivery; undecodable payloads are acked and dropped.
type Consumer[T any] struct {
	subscriber message.Subscriber
	topic      string
	handler    Handler[T]
	logger     *zap.Logger

	processed atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewConsumer creates a consumer for topic.
func NewConsumer[T any](
	subscriber message.Subscriber,
	topic string,
	handler Handler[T],
	logger *zap.Logger,
) *Consumer[T] {
	return &Consumer[T]{
		subscriber: subscriber,
		topic:      topic,
		handler:    handler,
		logger:     logger.With(zap.String("topic", topic)),
		done:       make(chan struct{}),
	}
}

// Topic returns the topic this consumer subscribes to.
func (c *Consumer[T]) Topic() string {
	return c.topic
}

// Stats returns the outcome counters so far.
func (c *Consumer[T]) Stats() ConsumerStats {
	return ConsumerStats{
		Topic:     c.topic,
		Processed: c.processed.Load(),
		Dropped:   c.dropped.Load(),
		Failed:    c.failed.Load(),
	}
}

// Start subscribes and processes messages in the background until ctx is
// cancelled or Shutdown is called.
func (c *Consumer[T]) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	msgs, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		c.cancel()
		close(c.done)

		return errors.Wrapf(err, "subscribe to %s", c.topic)
	}

	go func() {
		defer close(c.done)

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				c.process(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer[T]) process(ctx context.Context, msg *message.Message) {
	logger := c.logger.With(zap.String("messageId", msg.UUID))

	var event T
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.dropped.Add(1)
		logger.Error("dropping undecodable event", zap.Error(err))
		msg.Ack()

		return
	}

	if err := c.handler(ctx, &event); err != nil {
		c.failed.Add(1)
		logger.Error("failed to handle event", zap.Error(err))
		msg.Nack()

		return
	}

	c.processed.Add(1)
	msg.Ack()

	logger.Debug("processed event",
		zap.String("publishedAt", msg.Metadata.Get(MetadataPublishedAt)),
	)
}

// Shutdown stops the consumer and waits for the message in progress.
func (c *Consumer[T]) Shutdown() error {
	if c.cancel == nil {
		return nil
	}

	c.cancel()
	<-c.done

	return nil
}
