package messaging

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Runnable is anything with a start/stop lifecycle.
type Runnable interface {
	Start(ctx context.Context) error
	Shutdown() error
}

type statsReporter interface {
	Stats() ConsumerStats
}

// ConsumerGroup starts and stops a set of consumers sharing one subscriber.
type ConsumerGroup struct {
	consumers  []Runnable
	subscriber message.Subscriber
	logger     *zap.Logger
}

func NewConsumerGroup(subscriber message.Subscriber, logger *zap.Logger) *ConsumerGroup {
	return &ConsumerGroup{
		subscriber: subscriber,
		logger:     logger,
	}
}

func (g *ConsumerGroup) Add(consumer Runnable) {
	g.consumers = append(g.consumers, consumer)
}

// Len reports how many consumers are registered.
func (g *ConsumerGroup) Len() int {
	return len(g.consumers)
}

// Start starts consumers in order. If one fails, those already started are
// shut down in reverse order.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	for i, consumer := range g.consumers {
		err := consumer.Start(ctx)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			_ = g.consumers[j].Shutdown()
		}

		return errors.Wrapf(err, "start consumer %d", i)
	}

	g.logger.Info("consumer group started", zap.Int("count", len(g.consumers)))

	return nil
}

// Stats collects counters from every consumer that reports them.
func (g *ConsumerGroup) Stats() []ConsumerStats {
	out := make([]ConsumerStats, 0, len(g.consumers))

	for _, consumer := range g.consumers {
		if r, ok := consumer.(statsReporter); ok {
			out = append(out, r.Stats())
		}
	}

	return out
}

// Shutdown stops every consumer and closes the subscriber, combining any errors.
func (g *ConsumerGroup) Shutdown() error {
	var err error

	for _, consumer := range g.consumers {
		err = errors.CombineErrors(err, consumer.Shutdown())
	}

	for _, s := range g.Stats() {
		g.logger.Info("consumer stopped",
			zap.String("topic", s.Topic),
			zap.Int64("processed", s.Processed),
			zap.Int64("dropped", s.Dropped),
			zap.Int64("failed", s.Failed),
		)
	}

	return errors.CombineErrors(err, g.subscriber.Close())
}
