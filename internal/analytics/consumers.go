package analytics

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/campaign-links/internal/messaging"
	"go.uber.org/zap"
)

// NewConsumerGroup subscribes store to every link lifecycle topic.
func NewConsumerGroup(subscriber message.Subscriber, store Store, logger *zap.Logger) *messaging.ConsumerGroup {
	group := messaging.NewConsumerGroup(subscriber, logger)

	group.Add(messaging.NewConsumer(subscriber, TopicLinkGenerated, store.SaveLinkGenerated, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicLinkShortened, store.SaveLinkShortened, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicLinkDeleted, store.SaveLinkDeleted, logger))

	return group
}

// Publishers holds one typed publish function per lifecycle topic.
type Publishers struct {
	LinkGenerated messaging.Publish[LinkGeneratedEvent]
	LinkShortened messaging.Publish[LinkShortenedEvent]
	LinkDeleted   messaging.Publish[LinkDeletedEvent]
}

// NewPublishers binds publish functions for every lifecycle topic to publisher.
func NewPublishers(publisher message.Publisher) Publishers {
	return Publishers{
		LinkGenerated: messaging.NewPublishFunc[LinkGeneratedEvent](publisher, TopicLinkGenerated),
		LinkShortened: messaging.NewPublishFunc[LinkShortenedEvent](publisher, TopicLinkShortened),
		LinkDeleted:   messaging.NewPublishFunc[LinkDeletedEvent](publisher, TopicLinkDeleted),
	}
}

// DiscardPublishers drops every event.
func DiscardPublishers() Publishers {
	return Publishers{
		LinkGenerated: messaging.Discard[LinkGeneratedEvent](),
		LinkShortened: messaging.Discard[LinkShortenedEvent](),
		LinkDeleted:   messaging.Discard[LinkDeletedEvent](),
	}
}
