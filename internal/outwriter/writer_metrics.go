package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForMetrics marshals the schema.DashboardMetrics to JSON and writes it.
func writeJSONResultsForMetrics(w io.Writer, metrics *schema.DashboardMetrics) error {
	return writeJSON(w, metrics)
}

// writeCSVResultsForMetrics writes the headline KPI rows to CSV. The CSV
// shape is one row per sparkline point plus a summary row, so the series
// can be charted directly.
func writeCSVResultsForMetrics(w io.Writer, metrics *schema.DashboardMetrics) error {
	header := []string{
		"period_start",
		"period_end",
		"total_calls",
		"total_minutes",
		"success_rate",
		"avg_duration",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range metrics.Top.Sparkline {
			row := []string{
				p.Range.From.Format(schema.DayFormat),
				p.Range.To.Format(schema.DayFormat),
				fmtInt(p.TotalCalls),
				fmtInt(p.TotalMinutes),
				fmtFloat1(p.SuccessRate),
				fmtInt(p.AvgDuration),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		summary := []string{
			metrics.Range.From.Format(schema.DayFormat),
			metrics.Range.To.Format(schema.DayFormat),
			fmtInt(metrics.Top.TotalCalls),
			fmtInt(metrics.Top.TotalMinutes),
			fmtFloat1(metrics.Top.SuccessRate),
			fmtInt(metrics.Top.AvgDuration),
		}
		return csvWriter.Write(summary)
	})
}
