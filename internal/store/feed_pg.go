package store

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// reconnectDelay is how long the Postgres feed waits before redialing
// after a dropped connection.
const reconnectDelay = 3 * time.Second

// PostgresFeed delivers change events via LISTEN/NOTIFY on a dedicated
// pgx connection. The application is expected to publish envelopes with
// pg_notify from row triggers.
type PostgresFeed struct {
	dsn     string
	channel string
}

var _ contract.ChangeFeed = &PostgresFeed{} // Compile-time check

// NewPostgresFeed returns a feed listening on channel, or
// DefaultFeedChannel when channel is empty.
func NewPostgresFeed(dsn, channel string) *PostgresFeed {
	if channel == "" {
		channel = DefaultFeedChannel
	}
	return &PostgresFeed{dsn: dsn, channel: channel}
}

// Subscribe starts the listen loop on its own goroutine. Events matching
// interests are delivered in arrival order; connection state changes go to
// onStatus. The returned unsubscribe function is idempotent.
func (f *PostgresFeed) Subscribe(ctx context.Context, interests []schema.EventInterest,
	onEvent func(schema.ChangeEvent), onStatus func(schema.FeedState, error)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	set := newInterestSet(interests)

	go f.listenLoop(ctx, set, onEvent, onStatus)

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

// listenLoop dials, listens, and redials until ctx is cancelled.
func (f *PostgresFeed) listenLoop(ctx context.Context, set interestSet,
	onEvent func(schema.ChangeEvent), onStatus func(schema.FeedState, error)) {
	for {
		onStatus(schema.FeedConnecting, nil)

		err := f.listenOnce(ctx, set, onEvent, onStatus)
		if ctx.Err() != nil {
			onStatus(schema.FeedClosed, nil)
			return
		}
		onStatus(schema.FeedErrored, err)

		select {
		case <-ctx.Done():
			onStatus(schema.FeedClosed, nil)
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// listenOnce holds one connection for its lifetime and returns its
// terminal error.
func (f *PostgresFeed) listenOnce(ctx context.Context, set interestSet,
	onEvent func(schema.ChangeEvent), onStatus func(schema.FeedState, error)) error {
	conn, err := pgx.Connect(ctx, f.dsn)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return err
	}
	onStatus(schema.FeedSubscribed, nil)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		ev, err := decodeChangeEvent([]byte(notification.Payload))
		if err != nil {
			contract.LogWarn("dropping change notification", err)
			continue
		}
		if set.wants(ev) {
			onEvent(ev)
		}
	}
}
