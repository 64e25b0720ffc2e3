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

// PrintDashboardMetrics outputs the metric bundle, dispatching based on the
// output format configured.
func PrintDashboardMetrics(metrics *schema.DashboardMetrics, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForMetrics(metrics, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForMetrics(metrics, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		if err := printMetricsTable(metrics, cfg, duration); err != nil {
			return fmt.Errorf("error writing metrics table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForMetrics handles opening the file and calling the JSON writer.
func printJSONResultsForMetrics(metrics *schema.DashboardMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForMetrics(w, metrics)
	}, "Wrote JSON dashboard metrics")
}

// printCSVResultsForMetrics handles opening the file and calling the CSV writer.
func printCSVResultsForMetrics(metrics *schema.DashboardMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForMetrics(w, metrics)
	}, "Wrote CSV dashboard metrics")
}

// printMetricsTable prints the headline KPIs with their trends, followed by
// the status distribution.
func printMetricsTable(metrics *schema.DashboardMetrics, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	// --- 1. Define Headers ---
	table.Header([]string{"Metric", "Value", "Trend"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	top, trends := metrics.Top, metrics.Trends
	data := [][]string{
		{"Total Calls", fmtInt(top.TotalCalls), fmtTrend(trends.Calls)},
		{"Total Minutes", fmtInt(top.TotalMinutes), fmtTrend(trends.Minutes)},
		{"Success Rate", fmt.Sprintf("%s (%s)", fmtRate(top.SuccessRate), rateLabel(top.SuccessRate, cfg.UseColors)), fmtTrendPoints(trends.SuccessRate)},
		{"Avg Duration", fmt.Sprintf("%ds", top.AvgDuration), fmtTrend(trends.AvgDuration)},
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(metrics.Statuses) > 0 {
		if err := printStatusTable(metrics.Statuses); err != nil {
			return err
		}
	}

	fmt.Printf("Dashboard metrics for %s to %s computed in %v\n",
		metrics.Range.From.Format(schema.DayFormat), metrics.Range.To.Format(schema.DayFormat), duration)
	return nil
}

// printStatusTable prints the call status distribution.
func printStatusTable(statuses []schema.StatusSlice) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Status", "Count"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range statuses {
		data = append(data, []string{s.Name, fmtInt(s.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// fmtTrendPoints renders the success-rate delta, which is an absolute
// percentage-point difference rather than a relative change.
func fmtTrendPoints(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1fpp", *v)
}
