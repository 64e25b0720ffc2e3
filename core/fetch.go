package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// rowEnvelope is the cached shape of a row fetch: the page plus the total
// count before pagination.
type rowEnvelope[T any] struct {
	Rows  []T `json:"rows"`
	Total int `json:"total"`
}

// cachedFetch is the cache-aside path every named query goes through.
// A fresh cache entry is decoded and returned; a miss or stale entry runs
// fetch and stores the result. The fetch layer is the only writer of
// cache values; staleness is flipped elsewhere (by the bridge).
func cachedFetch[T any](cache contract.QueryCache, name, params string, fetch func() ([]T, int, error)) ([]T, int, error) {
	if cache != nil {
		if data, ok := cache.Get(name, params); ok {
			var env rowEnvelope[T]
			if err := json.Unmarshal(data, &env); err == nil {
				return env.Rows, env.Total, nil
			}
			// Undecodable entries fall through to a re-fetch.
		}
	}

	rows, total, err := fetch()
	if err != nil {
		return nil, 0, err
	}
	if cache != nil {
		if data, err := json.Marshal(rowEnvelope[T]{Rows: rows, Total: total}); err == nil {
			cache.Set(name, params, data)
		}
	}
	return rows, total, nil
}

// rangeParams builds the canonical parameter tuple for a range-scoped query.
func rangeParams(rng schema.TimeRange, ids ...string) string {
	key := fmt.Sprintf("%d-%d", rng.From.UnixNano(), rng.To.UnixNano())
	for _, id := range ids {
		key += "|" + id
	}
	return key
}

// loadCallRows fetches the calls for a range through the named cache.
func loadCallRows(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache, name string, rng schema.TimeRange) ([]schema.CallRecord, error) {
	rows, _, err := cachedFetch(cache, name, rangeParams(rng, cfg.ClientID, cfg.AgentID), func() ([]schema.CallRecord, int, error) {
		return store.FetchCalls(ctx, contract.CallQuery{
			Range:    rng,
			ClientID: cfg.ClientID,
			AgentID:  cfg.AgentID,
		})
	})
	return rows, err
}

// loadAppointmentRows fetches the appointments for a range through the named cache.
func loadAppointmentRows(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache, name string, rng schema.TimeRange) ([]schema.Appointment, error) {
	rows, _, err := cachedFetch(cache, name, rangeParams(rng, cfg.ClientID), func() ([]schema.Appointment, int, error) {
		return store.FetchAppointments(ctx, contract.AppointmentQuery{
			Range:    rng,
			ClientID: cfg.ClientID,
		})
	})
	return rows, err
}

// loadUsageRows fetches the usage records for a range through the named cache.
func loadUsageRows(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache, name string, rng schema.TimeRange) ([]schema.UsageRecord, error) {
	rows, _, err := cachedFetch(cache, name, rangeParams(rng, cfg.ClientID), func() ([]schema.UsageRecord, int, error) {
		return store.FetchUsage(ctx, contract.UsageQuery{
			Range:    rng,
			ClientID: cfg.ClientID,
		})
	})
	return rows, err
}
