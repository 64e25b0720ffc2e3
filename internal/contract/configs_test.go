package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{}))

	assert.Equal(t, DefaultRangeKey, cfg.Range)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.SnapshotBackend)
}

func TestProcessAndValidateRangeKeys(t *testing.T) {
	tests := []struct {
		name        string
		input       ConfigRawInput
		expectError bool
	}{
		{name: "named range", input: ConfigRawInput{RangeStr: "30d"}},
		{name: "this month", input: ConfigRawInput{RangeStr: "this-month"}},
		{name: "bogus range", input: ConfigRawInput{RangeStr: "fortnight"}, expectError: true},
		{name: "custom with endpoints", input: ConfigRawInput{RangeStr: "custom", FromStr: "2026-08-01", ToStr: "2026-08-15"}},
		{name: "custom with RFC3339 endpoints", input: ConfigRawInput{RangeStr: "custom", FromStr: "2026-08-01T09:00:00Z", ToStr: "2026-08-02T18:00:00Z"}},
		{name: "custom missing endpoints", input: ConfigRawInput{RangeStr: "custom"}, expectError: true},
		{name: "custom inverted endpoints", input: ConfigRawInput{RangeStr: "custom", FromStr: "2026-08-15", ToStr: "2026-08-01"}, expectError: true},
		{name: "from without custom", input: ConfigRawInput{RangeStr: "7d", FromStr: "2026-08-01"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProcessAndValidate(&Config{}, &tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateLimitClamping(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Limit: -5}))
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)

	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Limit: 100000}))
	assert.Equal(t, MaxResultLimit, cfg.ResultLimit)

	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Limit: 25}))
	assert.Equal(t, 25, cfg.ResultLimit)
}

func TestProcessAndValidateFeedSettings(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		FeedSource:   "kafka",
		KafkaBrokers: "broker1:9092, broker2:9092",
		KafkaTopic:   "calldeck_changes",
	}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "calldeck_changes", cfg.KafkaTopic)

	err := ProcessAndValidate(&Config{}, &ConfigRawInput{FeedSource: "rabbitmq"})
	assert.Error(t, err)
}

func TestProcessAndValidateSnapshotBackend(t *testing.T) {
	err := ProcessAndValidate(&Config{}, &ConfigRawInput{SnapshotBackend: "mysql"})
	require.Error(t, err, "mysql needs a connection string")

	err = ProcessAndValidate(&Config{}, &ConfigRawInput{SnapshotBackend: "mysql", SnapshotDBConnect: "nodelimiter"})
	require.Error(t, err)

	cfg := &Config{}
	err = ProcessAndValidate(cfg, &ConfigRawInput{SnapshotBackend: "mysql", SnapshotDBConnect: "user:pass@tcp(db:3306)/calldeck"})
	require.NoError(t, err)
	assert.Equal(t, schema.MySQLBackend, cfg.SnapshotBackend)

	err = ProcessAndValidate(&Config{}, &ConfigRawInput{SnapshotBackend: "postgresql"})
	require.Error(t, err, "postgresql needs a connection string")

	err = ProcessAndValidate(&Config{}, &ConfigRawInput{SnapshotBackend: "cassandra"})
	assert.Error(t, err)
}

func TestProcessAndValidateColorParsing(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"yes", true},
		{"no", false},
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"", true}, // default on
		{"maybe", true},
	}
	for _, tt := range tests {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{ColorStr: tt.raw}))
		assert.Equal(t, tt.expected, cfg.UseColors, "raw %q", tt.raw)
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{ClientID: "client-1", Range: schema.Last30Days, ResultLimit: 20}
	clone := cfg.Clone()
	clone.ClientID = "client-2"
	clone.From = time.Now()

	assert.Equal(t, "client-1", cfg.ClientID)
	assert.True(t, cfg.From.IsZero())
	assert.Equal(t, schema.Last30Days, clone.Range)
}
