// Package bridge connects a change feed to the query cache. It translates
// pushed row changes into targeted cache invalidations and degrades to a
// coarse polling fallback when the feed stays disconnected.
package bridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

const (
	// fallbackThreshold is how long the feed may stay disconnected before
	// the polling fallback engages. Policy constant, not configurable.
	fallbackThreshold = 30 * time.Second

	// pollInterval is the period of the fallback invalidation loop.
	pollInterval = 30 * time.Second
)

// Session is one live feed-to-cache bridge. It is the sole invalidator of
// the query cache; the fetch layer is the sole value writer. Construct with
// Start and dispose with Close, exactly once.
type Session struct {
	id       string
	feed     contract.ChangeFeed
	cache    contract.QueryCache
	notifier contract.Notifier

	// Shortened by tests; production sessions keep the package constants.
	fallbackAfter time.Duration
	pollEvery     time.Duration

	mu             sync.Mutex
	state          schema.FeedState
	disconnectedAt time.Time
	transitions    []schema.FeedTransition
	pollCancel     context.CancelFunc
	unsubscribe    func()
	closed         bool
}

// Start subscribes a new session to every watched table. The session stays
// alive through disconnects; only Close or a cancelled ctx tears it down.
func Start(ctx context.Context, feed contract.ChangeFeed, cache contract.QueryCache, notifier contract.Notifier) (*Session, error) {
	s := &Session{
		id:            uuid.NewString(),
		feed:          feed,
		cache:         cache,
		notifier:      notifier,
		fallbackAfter: fallbackThreshold,
		pollEvery:     pollInterval,
		state:         schema.FeedConnecting,
	}
	s.transitions = append(s.transitions, schema.FeedTransition{State: schema.FeedConnecting, At: time.Now()})

	unsubscribe, err := feed.Subscribe(ctx, schema.AllDashboardInterests(), s.handleEvent, s.handleStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	closed := s.closed
	s.mu.Unlock()

	// Close raced the subscribe call; honor it
	if closed {
		unsubscribe()
	}
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current feed state as last reported by the feed.
func (s *Session) State() schema.FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transitions returns a copy of every state transition observed so far.
func (s *Session) Transitions() []schema.FeedTransition {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.FeedTransition, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// Close cancels the subscription and any running fallback timer. It is
// idempotent and safe to call from any goroutine.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe := s.unsubscribe
	s.stopPollingLocked()
	s.state = schema.FeedClosed
	s.transitions = append(s.transitions, schema.FeedTransition{State: schema.FeedClosed, At: time.Now()})
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// InvalidateAllDashboardCaches marks every named dashboard query stale,
// including per-agent analytics entries. The polling fallback does not know
// what changed, so it invalidates everything.
func (s *Session) InvalidateAllDashboardCaches() {
	s.cache.Invalidate(contract.DashboardQueryNames...)
	s.cache.InvalidatePrefix(contract.QueryAgentAnalyticsPrefix)
}

// handleStatus reacts to feed state transitions. Reconnection clears the
// disconnect clock and stops polling; a disconnect starts it.
func (s *Session) handleStatus(state schema.FeedState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.state = state
	transition := schema.FeedTransition{State: state, At: time.Now()}
	if err != nil {
		transition.Err = err.Error()
	}
	s.transitions = append(s.transitions, transition)

	switch state {
	case schema.FeedSubscribed:
		s.disconnectedAt = time.Time{}
		s.stopPollingLocked()

	case schema.FeedClosed, schema.FeedErrored:
		if s.disconnectedAt.IsZero() {
			s.disconnectedAt = time.Now()
		}
		s.startPollingLocked()
	}
}

// startPollingLocked launches the fallback loop unless one is running.
// Callers must hold s.mu.
func (s *Session) startPollingLocked() {
	if s.pollCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.pollCancel = cancel
	go s.pollLoop(ctx)
}

// stopPollingLocked cancels a running fallback loop. Callers must hold s.mu.
func (s *Session) stopPollingLocked() {
	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}
}

// pollLoop waits out the disconnect threshold, then invalidates every
// dashboard cache on each tick until cancelled.
func (s *Session) pollLoop(ctx context.Context) {
	threshold := time.NewTimer(s.fallbackAfter)
	defer threshold.Stop()

	select {
	case <-ctx.Done():
		return
	case <-threshold.C:
	}

	s.InvalidateAllDashboardCaches()

	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.InvalidateAllDashboardCaches()
		}
	}
}

// handleEvent routes one pushed change to its fixed invalidation set.
func (s *Session) handleEvent(ev schema.ChangeEvent) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.dispatch(ev)
}
