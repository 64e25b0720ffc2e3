package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

func TestBuildWhere(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		where, args := buildWhere(func(w *whereBuilder) {})
		assert.Empty(t, where)
		assert.Nil(t, args)
	})

	t.Run("numbered placeholders", func(t *testing.T) {
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		where, args := buildWhere(func(w *whereBuilder) {
			w.add("started_at >= %s", from)
			w.add("agent_id = %s", "agent-1")
			w.add("archived = %s", false)
		})
		assert.Equal(t, " WHERE started_at >= $1 AND agent_id = $2 AND archived = $3", where)
		assert.Equal(t, []any{from, "agent-1", false}, args)
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "ASC", direction(contract.ListBounds{}))
	assert.Equal(t, "DESC", direction(contract.ListBounds{Descending: true}))
}

func TestLimitOffset(t *testing.T) {
	assert.Empty(t, limitOffset(contract.ListBounds{}))
	assert.Equal(t, " LIMIT 50", limitOffset(contract.ListBounds{Limit: 50}))
	assert.Equal(t, " LIMIT 50 OFFSET 100", limitOffset(contract.ListBounds{Limit: 50, Offset: 100}))
	// Offset without limit is meaningless and ignored
	assert.Empty(t, limitOffset(contract.ListBounds{Offset: 100}))
}

func TestNewPostgresStore_RequiresDSN(t *testing.T) {
	_, err := NewPostgresStore("")
	assert.Error(t, err)
}

func TestChangeEnvelopeRoundTrip(t *testing.T) {
	// The envelope the feeds consume matches what triggers publish
	payload := []byte(`{"table":"usage_records","type":"insert","row":{"id":"u1","client_id":"c1","minutes":12.5,"cost":0.8}}`)
	ev, err := decodeChangeEvent(payload)
	assert.NoError(t, err)
	assert.Equal(t, schema.TableUsage, ev.Table)
	assert.NotNil(t, ev.Usage)
	assert.InDelta(t, 12.5, ev.Usage.Minutes, 0.001)
}
