package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// PrintNotificationList outputs recent notifications, dispatching based on
// the output format configured.
func PrintNotificationList(items []schema.Notification, total int, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForNotifications(items, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForNotifications(items, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printNotificationTable(items, total, cfg, duration); err != nil {
			return fmt.Errorf("error writing notification table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForNotifications handles opening the file and calling the JSON writer.
func printJSONResultsForNotifications(items []schema.Notification, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForNotifications(w, items)
	}, "Wrote JSON notification results")
}

// printCSVResultsForNotifications handles opening the file and calling the CSV writer.
func printCSVResultsForNotifications(items []schema.Notification, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForNotifications(w, items)
	}, "Wrote CSV notification results")
}

// printNotificationTable prints one row per notification, newest first.
func printNotificationTable(items []schema.Notification, total int, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Created", "Title", "Body", "Read"})

	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, n := range items {
		read := ""
		if n.Read {
			read = "yes"
		}
		data = append(data, []string{
			n.CreatedAt.Format(time.RFC3339),
			truncateText(n.Title, maxWidth),
			truncateText(n.Body, maxWidth),
			read,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d of %d notifications in %v\n", len(items), total, duration)
	return nil
}
