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

// PrintVolumeSeries outputs the daily volume series, dispatching based on
// the output format configured.
func PrintVolumeSeries(series *schema.VolumeSeries, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForVolume(series, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForVolume(series, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printVolumeTable(series, duration); err != nil {
			return fmt.Errorf("error writing volume table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForVolume handles opening the file and calling the JSON writer.
func printJSONResultsForVolume(series *schema.VolumeSeries, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForVolume(w, series)
	}, "Wrote JSON volume results")
}

// printCSVResultsForVolume handles opening the file and calling the CSV writer.
func printCSVResultsForVolume(series *schema.VolumeSeries, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForVolume(w, series)
	}, "Wrote CSV volume results")
}

// printVolumeTable prints one row per day with a peak-day marker.
func printVolumeTable(series *schema.VolumeSeries, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Total", "Completed", "Failed", ""})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range series.Points {
		marker := ""
		if p.Date == series.PeakDay {
			marker = "peak"
		}
		data = append(data, []string{p.Date, fmtInt(p.Total), fmtInt(p.Completed), fmtInt(p.Failed), marker})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Volume trend over %d days computed in %v\n", len(series.Points), duration)
	return nil
}
