package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForVolume marshals the schema.VolumeSeries to JSON and writes it.
func writeJSONResultsForVolume(w io.Writer, series *schema.VolumeSeries) error {
	return writeJSON(w, series)
}

// writeCSVResultsForVolume writes one CSV row per day.
func writeCSVResultsForVolume(w io.Writer, series *schema.VolumeSeries) error {
	header := []string{
		"date",
		"total",
		"completed",
		"failed",
		"peak",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range series.Points {
			peak := ""
			if p.Date == series.PeakDay {
				peak = "true"
			}
			row := []string{p.Date, fmtInt(p.Total), fmtInt(p.Completed), fmtInt(p.Failed), peak}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
