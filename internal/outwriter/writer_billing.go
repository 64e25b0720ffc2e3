package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForBilling marshals the schema.UsageSummary to JSON and writes it.
func writeJSONResultsForBilling(w io.Writer, summary *schema.UsageSummary) error {
	return writeJSON(w, summary)
}

// writeCSVResultsForBilling writes one CSV row per metered day. The range
// totals repeat on every row so each line stands alone.
func writeCSVResultsForBilling(w io.Writer, summary *schema.UsageSummary) error {
	header := []string{
		"date",
		"minutes",
		"cost",
		"total_minutes",
		"total_cost",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range summary.Daily {
			row := []string{
				p.Date,
				fmtFloat1(p.Minutes),
				fmtCost(p.Cost),
				fmtFloat1(summary.TotalMinutes),
				fmtCost(summary.TotalCost),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
