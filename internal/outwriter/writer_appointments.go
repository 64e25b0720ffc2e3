package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForAppointments marshals the schema.AppointmentStats to JSON and writes it.
func writeJSONResultsForAppointments(w io.Writer, stats *schema.AppointmentStats) error {
	return writeJSON(w, stats)
}

// writeCSVResultsForAppointments writes the daily booking trend, one row
// per day, with the summary numbers repeated for convenience.
func writeCSVResultsForAppointments(w io.Writer, stats *schema.AppointmentStats) error {
	header := []string{
		"date",
		"count",
		"total",
		"show_up_rate",
		"avg_lead_time_days",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, d := range stats.DailyTrend {
			row := []string{
				d.Date,
				fmtInt(d.Count),
				fmtInt(stats.Total),
				fmtInt(stats.ShowUpRate),
				fmtInt(stats.AvgLeadTimeDays),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForUpcoming marshals the upcoming appointment list to JSON and writes it.
func writeJSONResultsForUpcoming(w io.Writer, items []schema.Appointment) error {
	return writeJSON(w, items)
}

// writeCSVResultsForUpcoming writes one CSV row per upcoming appointment.
func writeCSVResultsForUpcoming(w io.Writer, items []schema.Appointment) error {
	header := []string{
		"id",
		"client_id",
		"date",
		"time_of_day",
		"status",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, a := range items {
			row := []string{a.ID, a.ClientID, a.Date, a.TimeOfDay, string(a.Status)}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
