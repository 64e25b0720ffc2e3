package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/calldeck/calldeck/internal/contract"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// fmtInt renders an int for table and CSV cells.
func fmtInt(v int) string {
	return strconv.Itoa(v)
}

// fmtRate renders a one-decimal percentage.
func fmtRate(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// fmtFloat1 renders a one-decimal number without a unit.
func fmtFloat1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// fmtCost renders a monetary amount with two decimals.
func fmtCost(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// fmtTrend renders a period-over-period delta; nil means no baseline.
func fmtTrend(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", *v)
}

// rateLabel picks the colored or plain label depending on config.
func rateLabel(rate float64, useColors bool) string {
	if useColors {
		return contract.GetColorRateLabel(rate)
	}
	return contract.GetPlainRateLabel(rate)
}
