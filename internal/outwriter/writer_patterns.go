package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForPatterns marshals the schema.CallPatterns to JSON and writes it.
func writeJSONResultsForPatterns(w io.Writer, patterns *schema.CallPatterns) error {
	return writeJSON(w, patterns)
}

// writeCSVResultsForPatterns writes the 24 hour buckets followed by the 7
// weekday buckets, tagged by dimension.
func writeCSVResultsForPatterns(w io.Writer, patterns *schema.CallPatterns) error {
	header := []string{
		"dimension",
		"bucket",
		"count",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, h := range patterns.Hours {
			if err := csvWriter.Write([]string{"hour", fmtInt(h.Hour), fmtInt(h.Count)}); err != nil {
				return err
			}
		}
		for _, d := range patterns.Weekdays {
			if err := csvWriter.Write([]string{"weekday", d.Weekday, fmtInt(d.Count)}); err != nil {
				return err
			}
		}
		return nil
	})
}
