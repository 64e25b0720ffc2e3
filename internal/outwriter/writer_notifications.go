package outwriter

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/calldeck/calldeck/schema"
)

// writeJSONResultsForNotifications marshals the notification list to JSON and writes it.
func writeJSONResultsForNotifications(w io.Writer, items []schema.Notification) error {
	return writeJSON(w, items)
}

// writeCSVResultsForNotifications writes one CSV row per notification.
func writeCSVResultsForNotifications(w io.Writer, items []schema.Notification) error {
	header := []string{
		"id",
		"client_id",
		"title",
		"body",
		"read",
		"created_at",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, n := range items {
			read := "false"
			if n.Read {
				read = "true"
			}
			row := []string{
				n.ID,
				n.ClientID,
				n.Title,
				n.Body,
				read,
				n.CreatedAt.Format(time.RFC3339),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
