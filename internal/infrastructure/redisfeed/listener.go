package redisfeed

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/pkg/logger"
)

// Listener consumes change events from Redis pub/sub and forwards them into the
// in-process hub, from which SSE subscriptions are served. Running it in every
// instance means events published by one instance reach subscribers on all.
type Listener struct {
	rdb *redis.Client
	hub *changefeed.Hub
	log *logger.Logger
}

// NewListener builds the listener.
func NewListener(rdb *redis.Client, hub *changefeed.Hub, log *logger.Logger) *Listener {
	return &Listener{rdb: rdb, hub: hub, log: log}
}

// Run blocks pumping messages into the hub until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	pubsub := l.rdb.PSubscribe(ctx, channelPattern)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev changefeed.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				l.log.Warn().Err(err).Str("channel", msg.Channel).Msg("malformed change event")
				continue
			}
			l.hub.Broadcast(ev)
		}
	}
}
