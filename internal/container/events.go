package container

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/cockroachdb/errors"
	"github.com/samber/do"
	"github.com/serroba/campaign-links/internal/analytics"
	analyticsstore "github.com/serroba/campaign-links/internal/analytics/store"
	"github.com/serroba/campaign-links/internal/messaging"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// Analytics sinks.
const (
	AnalyticsStats = "stats"
	AnalyticsLog   = "log"
)

// GoChannelPackage provides the in-process pub/sub shared by publishers and consumers.
func GoChannelPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*gochannel.GoChannel, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		return messaging.NewGoChannel(messaging.NewZapLogger(logger)), nil
	})
}

// PublisherGroupPackage provides the event publisher for Options.Events and
// typed publish functions for every link topic.
func PublisherGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		switch opts.Events {
		case messaging.BackendGoChannel:
			return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i), opts.Events), nil
		case messaging.BackendRedis:
			client := do.MustInvoke[*RedisClient](i)

			pub, err := messaging.NewRedisPublisher(client.Client, messaging.NewZapLogger(logger))
			if err != nil {
				return nil, err
			}

			return messaging.NewPublisherGroup(pub, opts.Events), nil
		default:
			return nil, errors.Wrapf(messaging.ErrUnknownBackend, "%q", opts.Events)
		}
	})

	do.Provide(i, func(i *do.Injector) (analytics.Publishers, error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return analytics.NewPublishers(group.Publisher()), nil
	})
}

// AnalyticsPackage provides the campaign counters and the analytics sink
// selected by Options.Analytics.
func AnalyticsPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*analyticsstore.Stats, error) {
		storage := do.MustInvoke[snapshot.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		stats := analyticsstore.NewStats(storage, logger)
		if err := stats.Load(context.Background()); err != nil {
			return nil, err
		}

		return stats, nil
	})

	do.Provide(i, func(i *do.Injector) (analytics.Store, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		switch opts.Analytics {
		case AnalyticsStats:
			return do.MustInvoke[*analyticsstore.Stats](i), nil
		case AnalyticsLog:
			return analyticsstore.NewNoop(logger), nil
		default:
			return nil, errors.Newf("unknown analytics sink %q", opts.Analytics)
		}
	})
}

// ConsumerGroupPackage provides consumers that feed every link topic into
// the analytics sink.
func ConsumerGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		sink := do.MustInvoke[analytics.Store](i)

		var subscriber message.Subscriber

		switch opts.Events {
		case messaging.BackendGoChannel:
			subscriber = do.MustInvoke[*gochannel.GoChannel](i)
		case messaging.BackendRedis:
			client := do.MustInvoke[*RedisClient](i)

			sub, err := messaging.NewRedisSubscriber(client.Client, messaging.DefaultConsumerGroup, messaging.NewZapLogger(logger))
			if err != nil {
				return nil, err
			}

			subscriber = sub
		default:
			return nil, errors.Wrapf(messaging.ErrUnknownBackend, "%q", opts.Events)
		}

		return analytics.NewConsumerGroup(subscriber, sink, logger), nil
	})
}
