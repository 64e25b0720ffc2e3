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

// PrintAppointmentStats outputs appointment statistics, dispatching based
// on the output format configured.
func PrintAppointmentStats(stats *schema.AppointmentStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForAppointments(stats, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForAppointments(stats, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printAppointmentsTable(stats, cfg, duration); err != nil {
			return fmt.Errorf("error writing appointments table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForAppointments handles opening the file and calling the JSON writer.
func printJSONResultsForAppointments(stats *schema.AppointmentStats, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForAppointments(w, stats)
	}, "Wrote JSON appointment results")
}

// printCSVResultsForAppointments handles opening the file and calling the CSV writer.
func printCSVResultsForAppointments(stats *schema.AppointmentStats, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForAppointments(w, stats)
	}, "Wrote CSV appointment results")
}

// printAppointmentsTable prints the summary numbers and the status split.
func printAppointmentsTable(stats *schema.AppointmentStats, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Total Appointments", fmtInt(stats.Total)},
		{"Show-Up Rate", fmt.Sprintf("%d%% (%s)", stats.ShowUpRate, rateLabel(float64(stats.ShowUpRate), cfg.UseColors))},
		{"Avg Lead Time", fmt.Sprintf("%d days", stats.AvgLeadTimeDays)},
	}
	for _, s := range stats.Statuses {
		data = append(data, []string{fmt.Sprintf("Status: %s", s.Name), fmtInt(s.Count)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Appointment stats computed in %v\n", duration)
	return nil
}

// PrintUpcomingAppointments outputs the upcoming appointment list,
// dispatching based on the output format configured.
func PrintUpcomingAppointments(items []schema.Appointment, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForUpcoming(items, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForUpcoming(items, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printUpcomingTable(items, cfg, duration); err != nil {
			return fmt.Errorf("error writing upcoming table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForUpcoming handles opening the file and calling the JSON writer.
func printJSONResultsForUpcoming(items []schema.Appointment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForUpcoming(w, items)
	}, "Wrote JSON upcoming appointment results")
}

// printCSVResultsForUpcoming handles opening the file and calling the CSV writer.
func printCSVResultsForUpcoming(items []schema.Appointment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForUpcoming(w, items)
	}, "Wrote CSV upcoming appointment results")
}

// printUpcomingTable prints one row per upcoming appointment, soonest first.
func printUpcomingTable(items []schema.Appointment, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Time", "Client", "Status"})

	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, a := range items {
		data = append(data, []string{a.Date, a.TimeOfDay, truncateText(a.ClientID, maxWidth), string(a.Status)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Listed %d upcoming appointments in %v\n", len(items), duration)
	return nil
}
