// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMetrics prints the dashboard metric bundle using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics *schema.DashboardMetrics, cfg *contract.Config, duration time.Duration) error {
	return PrintDashboardMetrics(metrics, cfg, duration)
}

// WriteVolume prints the daily volume series using the configured output format.
func (ow *OutWriter) WriteVolume(series *schema.VolumeSeries, cfg *contract.Config, duration time.Duration) error {
	return PrintVolumeSeries(series, cfg, duration)
}

// WritePatterns prints hour and weekday call patterns using the configured output format.
func (ow *OutWriter) WritePatterns(patterns *schema.CallPatterns, cfg *contract.Config, duration time.Duration) error {
	return PrintCallPatterns(patterns, cfg, duration)
}

// WriteOutcomes prints the outcome distribution using the configured output format.
func (ow *OutWriter) WriteOutcomes(outcomes *schema.OutcomeDistribution, cfg *contract.Config, duration time.Duration) error {
	return PrintOutcomeDistribution(outcomes, cfg, duration)
}

// WriteAppointments prints appointment statistics using the configured output format.
func (ow *OutWriter) WriteAppointments(stats *schema.AppointmentStats, cfg *contract.Config, duration time.Duration) error {
	return PrintAppointmentStats(stats, cfg, duration)
}

// WriteCalls prints a list of call rows using the configured output format.
func (ow *OutWriter) WriteCalls(calls []schema.CallRecord, total int, cfg *contract.Config, duration time.Duration) error {
	return PrintCallList(calls, total, cfg, duration)
}

// WriteUpcoming prints the upcoming appointment list using the configured output format.
func (ow *OutWriter) WriteUpcoming(items []schema.Appointment, cfg *contract.Config, duration time.Duration) error {
	return PrintUpcomingAppointments(items, cfg, duration)
}

// WriteBilling prints the billing overview using the configured output format.
func (ow *OutWriter) WriteBilling(summary *schema.UsageSummary, cfg *contract.Config, duration time.Duration) error {
	return PrintUsageSummary(summary, cfg, duration)
}

// WriteNotifications prints recent notifications using the configured output format.
func (ow *OutWriter) WriteNotifications(items []schema.Notification, total int, cfg *contract.Config, duration time.Duration) error {
	return PrintNotificationList(items, total, cfg, duration)
}
