package redisfeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/metrics"
	"github.com/bhojansetu/bhojan-setu-api/pkg/logger"
)

var _ changefeed.Publisher = (*Publisher)(nil)

// Publisher emits change events to Redis pub/sub, one channel per table.
// Publishing is fire-and-forget: a lost event only delays a re-fetch, it never
// corrupts state, so failures are logged and dropped.
type Publisher struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewPublisher builds the publisher.
func NewPublisher(rdb *redis.Client, log *logger.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

// Publish marshals the event and publishes it to changefeed:<table>.
func (p *Publisher) Publish(ev changefeed.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Str("table", ev.Table).Msg("marshal change event")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.rdb.Publish(ctx, channelFor(ev.Table), payload).Err(); err != nil {
		p.log.Warn().Err(err).Str("table", ev.Table).Str("row_id", ev.RowID).Msg("publish change event")
		return
	}
	metrics.ChangeEventsPublished.WithLabelValues(ev.Table).Inc()
}
