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

// PrintUsageSummary outputs the billing overview, dispatching based on the
// output format configured.
func PrintUsageSummary(summary *schema.UsageSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForBilling(summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForBilling(summary, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printBillingTable(summary, duration); err != nil {
			return fmt.Errorf("error writing billing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForBilling handles opening the file and calling the JSON writer.
func printJSONResultsForBilling(summary *schema.UsageSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBilling(w, summary)
	}, "Wrote JSON billing results")
}

// printCSVResultsForBilling handles opening the file and calling the CSV writer.
func printCSVResultsForBilling(summary *schema.UsageSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForBilling(w, summary)
	}, "Wrote CSV billing results")
}

// printBillingTable prints one row per metered day plus a totals row.
func printBillingTable(summary *schema.UsageSummary, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Minutes", "Cost"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range summary.Daily {
		data = append(data, []string{p.Date, fmtFloat1(p.Minutes), fmtCost(p.Cost)})
	}
	data = append(data, []string{"total", fmtFloat1(summary.TotalMinutes), fmtCost(summary.TotalCost)})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Billing overview over %d days computed in %v\n", len(summary.Daily), duration)
	return nil
}
