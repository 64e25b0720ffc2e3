package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForCalls marshals the call rows to JSON and writes them.
func writeJSONResultsForCalls(w io.Writer, calls []schema.CallRecord) error {
	return writeJSON(w, calls)
}

// writeCSVResultsForCalls writes one CSV row per call.
func writeCSVResultsForCalls(w io.Writer, calls []schema.CallRecord) error {
	header := []string{
		"id",
		"agent_id",
		"client_id",
		"started_at",
		"duration_seconds",
		"status",
		"outcome",
		"lead",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, c := range calls {
			lead := ""
			if c.Collected.HasLead() {
				lead = "true"
			}
			row := []string{
				c.ID,
				c.AgentID,
				c.ClientID,
				c.StartedAt.Format(contract.DateTimeFormat),
				fmtInt(c.DurationSeconds),
				string(c.Status),
				c.Outcome,
				lead,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
