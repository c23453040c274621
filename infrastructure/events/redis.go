package events

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	log.L.WithField("addr", opts.Addr).Info("redis connected")
	return client, nil
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher pushes every status change of a run to a pub/sub channel
type RedisPublisher struct {
	client  publisher
	channel string
}

func NewRedisPublisher(client publisher, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// StatusChanged never fails the run; publish errors are logged
func (p *RedisPublisher) StatusChanged(ctx context.Context, event domain.StatusEvent) {
	if err := p.Publish(ctx, event); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"run_id":     event.RunID,
			"account_id": event.AdAccountID,
		}).Warn("events: failed to publish status")
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event domain.StatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode status event")
	}
	return p.client.Publish(ctx, p.channel, string(data)).Err()
}

type RedisSubscriber struct {
	client  *redis.Client
	channel string
}

func NewRedisSubscriber(client *redis.Client, channel string) *RedisSubscriber {
	return &RedisSubscriber{client: client, channel: channel}
}

// Subscribe calls handler for every event until ctx is done
func (s *RedisSubscriber) Subscribe(ctx context.Context, handler func(domain.StatusEvent)) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return errors.Wrapf(err, "subscribe to %s", s.channel)
	}
	defer pubsub.Close()

	return consume(ctx, pubsub.Channel(), handler)
}

func consume(ctx context.Context, messages <-chan *redis.Message, handler func(domain.StatusEvent)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var event domain.StatusEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.L.WithError(err).Error("events: failed to decode status event")
				continue
			}
			handler(event)
		}
	}
}
