package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// PrintCallList outputs recent call rows, dispatching based on the output
// format configured.
func PrintCallList(calls []schema.CallRecord, total int, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForCalls(calls, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForCalls(calls, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printCallTable(calls, total, cfg, duration); err != nil {
			return fmt.Errorf("error writing call table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForCalls handles opening the file and calling the JSON writer.
func printJSONResultsForCalls(calls []schema.CallRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForCalls(w, calls)
	}, "Wrote JSON call results")
}

// printCSVResultsForCalls handles opening the file and calling the CSV writer.
func printCSVResultsForCalls(calls []schema.CallRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForCalls(w, calls)
	}, "Wrote CSV call results")
}

// printCallTable prints one row per call.
func printCallTable(calls []schema.CallRecord, total int, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Started", "Agent", "Duration", "Status", "Outcome", "Lead"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	width := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, c := range calls {
		lead := ""
		if c.Collected.HasLead() {
			lead = "yes"
		}
		row := []string{
			c.StartedAt.Format("2006-01-02 15:04"),
			c.AgentID,
			fmt.Sprintf("%ds", c.DurationSeconds),
			string(c.Status),
			truncateText(c.Outcome, width),
			lead,
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d of %d calls, fetched in %v\n", len(calls), total, duration)
	return nil
}
