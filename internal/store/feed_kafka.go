package store

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// KafkaFeed delivers change events from a Kafka topic carrying the same
// JSON envelopes as the Postgres feed, for deployments that publish CDC
// to a broker instead of NOTIFY.
type KafkaFeed struct {
	brokers []string
	topic   string
	group   string
}

var _ contract.ChangeFeed = &KafkaFeed{} // Compile-time check

// NewKafkaFeed returns a feed reading topic (DefaultFeedChannel when
// empty) as consumer group "calldeck-dashboard".
func NewKafkaFeed(brokers []string, topic string) *KafkaFeed {
	if topic == "" {
		topic = DefaultFeedChannel
	}
	return &KafkaFeed{brokers: brokers, topic: topic, group: "calldeck-dashboard"}
}

// Subscribe starts the consume loop on its own goroutine. The returned
// unsubscribe function is idempotent.
func (f *KafkaFeed) Subscribe(ctx context.Context, interests []schema.EventInterest,
	onEvent func(schema.ChangeEvent), onStatus func(schema.FeedState, error)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	set := newInterestSet(interests)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  f.brokers,
		Topic:    f.topic,
		GroupID:  f.group,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	go f.consumeLoop(ctx, reader, set, onEvent, onStatus)

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

// consumeLoop reads messages until ctx is cancelled. Kafka readers retry
// broker failures internally, so a read error with a live ctx is reported
// as errored and the loop keeps going.
func (f *KafkaFeed) consumeLoop(ctx context.Context, reader *kafka.Reader, set interestSet,
	onEvent func(schema.ChangeEvent), onStatus func(schema.FeedState, error)) {
	defer func() { _ = reader.Close() }()

	// The reader dials lazily; a quiet topic is indistinguishable from a
	// healthy one, so report subscribed up front and errored on failures.
	onStatus(schema.FeedConnecting, nil)
	onStatus(schema.FeedSubscribed, nil)
	subscribed := true

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				onStatus(schema.FeedClosed, nil)
				return
			}
			onStatus(schema.FeedErrored, err)
			subscribed = false
			continue
		}
		if !subscribed {
			onStatus(schema.FeedSubscribed, nil)
			subscribed = true
		}

		ev, err := decodeChangeEvent(msg.Value)
		if err != nil {
			contract.LogWarn("dropping change message", err)
			continue
		}
		if set.wants(ev) {
			onEvent(ev)
		}
	}
}
