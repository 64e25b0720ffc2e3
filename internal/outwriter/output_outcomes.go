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

// PrintOutcomeDistribution outputs the outcome distribution, dispatching
// based on the output format configured.
func PrintOutcomeDistribution(outcomes *schema.OutcomeDistribution, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForOutcomes(outcomes, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForOutcomes(outcomes, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printOutcomesTable(outcomes, cfg, duration); err != nil {
			return fmt.Errorf("error writing outcomes table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForOutcomes handles opening the file and calling the JSON writer.
func printJSONResultsForOutcomes(outcomes *schema.OutcomeDistribution, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForOutcomes(w, outcomes)
	}, "Wrote JSON outcome results")
}

// printCSVResultsForOutcomes handles opening the file and calling the CSV writer.
func printCSVResultsForOutcomes(outcomes *schema.OutcomeDistribution, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForOutcomes(w, outcomes)
	}, "Wrote CSV outcome results")
}

// printOutcomesTable prints one row per outcome bucket plus the lead count.
func printOutcomesTable(outcomes *schema.OutcomeDistribution, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Outcome", "Count", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	width := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, s := range outcomes.Slices {
		data = append(data, []string{truncateText(s.Name, width), fmtInt(s.Count), fmtRate(s.Percent)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Leads captured: %d\n", outcomes.LeadsCaptured)
	fmt.Printf("Outcome distribution computed in %v\n", duration)
	return nil
}
