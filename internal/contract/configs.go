package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/calldeck/calldeck/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultRangeKey    = schema.Last7Days
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Feed sources supported by the watch command.
const (
	FeedSourcePostgres = "postgres"
	FeedSourceKafka    = "kafka"
)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	ClientID   string `mapstructure:"client"`
	AgentID    string `mapstructure:"agent"`
	RangeStr   string `mapstructure:"range"`
	FromStr    string `mapstructure:"from"`
	ToStr      string `mapstructure:"to"`
	Limit      int    `mapstructure:"limit"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	ColorStr   string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`

	StoreDSN     string `mapstructure:"store-dsn"`
	FeedSource   string `mapstructure:"feed-source"`
	FeedChannel  string `mapstructure:"feed-channel"`
	KafkaBrokers string `mapstructure:"kafka-brokers"`
	KafkaTopic   string `mapstructure:"kafka-topic"`

	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
}

// Config holds the runtime configuration for dashboard operations.
// This struct remains the "final, validated" config.
type Config struct {
	ClientID    string
	AgentID     string
	Range       schema.RangeKey
	From        time.Time // only set for the custom range
	To          time.Time
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)

	StoreDSN     string // Please use env var as this is plaintext
	FeedSource   string
	FeedChannel  string
	KafkaBrokers []string
	KafkaTopic   string

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext
}

// Clone returns a shallow copy for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate converts raw input into the validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.ClientID = strings.TrimSpace(input.ClientID)
	cfg.AgentID = strings.TrimSpace(input.AgentID)

	// Range key resolution
	rangeKey := schema.RangeKey(strings.TrimSpace(input.RangeStr))
	if rangeKey == "" {
		rangeKey = DefaultRangeKey
	}
	if _, ok := schema.ValidRangeKeys[rangeKey]; !ok {
		return fmt.Errorf("invalid range %q: must be 7d, 30d, 90d, this-month, last-month, or custom", input.RangeStr)
	}
	cfg.Range = rangeKey

	if rangeKey == schema.Custom {
		from, err := parseDateOrTime(input.FromStr)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		to, err := parseDateOrTime(input.ToStr)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		if to.Before(from) {
			return fmt.Errorf("--to (%s) must not precede --from (%s)", input.ToStr, input.FromStr)
		}
		cfg.From, cfg.To = from, to
	} else if input.FromStr != "" || input.ToStr != "" {
		return fmt.Errorf("--from/--to require --range custom")
	}

	// Result limit
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	if limit > MaxResultLimit {
		limit = MaxResultLimit
	}
	cfg.ResultLimit = limit

	// Output mode
	output := schema.OutputMode(strings.TrimSpace(input.Output))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output %q: must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.UseColors = parseBoolish(input.ColorStr, true)
	cfg.Width = input.Width

	// Store and feed wiring
	cfg.StoreDSN = strings.TrimSpace(input.StoreDSN)
	cfg.FeedSource = strings.TrimSpace(input.FeedSource)
	if cfg.FeedSource != "" && cfg.FeedSource != FeedSourcePostgres && cfg.FeedSource != FeedSourceKafka {
		return fmt.Errorf("invalid feed-source %q: must be postgres or kafka", input.FeedSource)
	}
	cfg.FeedChannel = strings.TrimSpace(input.FeedChannel)
	if brokers := strings.TrimSpace(input.KafkaBrokers); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
		for i := range cfg.KafkaBrokers {
			cfg.KafkaBrokers[i] = strings.TrimSpace(cfg.KafkaBrokers[i])
		}
	}
	cfg.KafkaTopic = strings.TrimSpace(input.KafkaTopic)

	// Snapshot backend
	backend := schema.DatabaseBackend(strings.TrimSpace(input.SnapshotBackend))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot-backend %q: must be sqlite, mysql, postgresql, or none", input.SnapshotBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.SnapshotDBConnect); err != nil {
		return err
	}
	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = strings.TrimSpace(input.SnapshotDBConnect)

	return nil
}

// ValidateDatabaseConnectionString performs basic shape validation for
// server-backed snapshot backends. SQLite paths and "none" need nothing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	connStr = strings.TrimSpace(connStr)
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:pass@tcp(host:port)/dbname)")
		}
		if !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql connection string looks malformed: expected user:pass@tcp(host:port)/dbname")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... user=... dbname=...)")
		}
	}
	return nil
}

// parseDateOrTime accepts either a date-only or an RFC3339 value.
func parseDateOrTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}
	if t, err := time.Parse(schema.DayFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(DateTimeFormat, s)
}

// parseBoolish interprets yes/no/true/false/1/0 with a default.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
