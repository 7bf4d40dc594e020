package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// Supported event transports.
const (
	BackendGoChannel = "gochannel"
	BackendRedis     = "redis"
)

// DefaultConsumerGroup is the redis stream consumer group used by the analytics consumer.
const DefaultConsumerGroup = "campaign-links-analytics"

// ErrUnknownBackend is returned for an unrecognised transport name.
var ErrUnknownBackend = errors.New("unknown events backend")

// NewGoChannel returns an in-process pub/sub. The same value serves as publisher and subscriber.
func NewGoChannel(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
}

// NewRedisPublisher publishes to redis streams named after each topic.
func NewRedisPublisher(client redis.UniversalClient, logger watermill.LoggerAdapter) (message.Publisher, error) {
	pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "create redis stream publisher")
	}

	return pub, nil
}

// NewRedisSubscriber reads redis streams as a member of consumerGroup.
func NewRedisSubscriber(client redis.UniversalClient, consumerGroup string, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
	}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "create redis stream subscriber")
	}

	return sub, nil
}
