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

// PrintCallPatterns outputs hour and weekday activity, dispatching based on
// the output format configured.
func PrintCallPatterns(patterns *schema.CallPatterns, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForPatterns(patterns, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForPatterns(patterns, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printPatternsTable(patterns, duration); err != nil {
			return fmt.Errorf("error writing patterns table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForPatterns handles opening the file and calling the JSON writer.
func printJSONResultsForPatterns(patterns *schema.CallPatterns, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForPatterns(w, patterns)
	}, "Wrote JSON pattern results")
}

// printCSVResultsForPatterns handles opening the file and calling the CSV writer.
func printCSVResultsForPatterns(patterns *schema.CallPatterns, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForPatterns(w, patterns)
	}, "Wrote CSV pattern results")
}

// printPatternsTable prints the weekday distribution and the ranked hours.
func printPatternsTable(patterns *schema.CallPatterns, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Weekday", "Calls"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, w := range patterns.Weekdays {
		data = append(data, []string{w.Weekday, fmtInt(w.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Busiest hours: %s\n", formatHourList(patterns.TopHours))
	fmt.Printf("Quietest hours: %s\n", formatHourList(patterns.SlowestHours))
	fmt.Printf("Call patterns computed in %v\n", duration)
	return nil
}

// formatHourList renders ranked hour buckets as "09:00 (12 calls)" entries.
func formatHourList(hours []schema.HourBucket) string {
	if len(hours) == 0 {
		return "none"
	}
	out := ""
	for i, h := range hours {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%02d:00 (%d calls)", h.Hour, h.Count)
	}
	return out
}
