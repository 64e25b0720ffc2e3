package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForOutcomes marshals the schema.OutcomeDistribution to JSON and writes it.
func writeJSONResultsForOutcomes(w io.Writer, outcomes *schema.OutcomeDistribution) error {
	return writeJSON(w, outcomes)
}

// writeCSVResultsForOutcomes writes one CSV row per outcome bucket.
func writeCSVResultsForOutcomes(w io.Writer, outcomes *schema.OutcomeDistribution) error {
	header := []string{
		"outcome",
		"count",
		"percent",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, s := range outcomes.Slices {
			row := []string{s.Name, fmtInt(s.Count), fmtFloat1(s.Percent)}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
