package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Rate label constants.
const (
	StrongValue   = "Strong"
	HealthyValue  = "Healthy"
	LaggingValue  = "Lagging"
	CriticalValue = "Critical"
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold)
	HealthyColor  = color.New(color.FgCyan)
	LaggingColor  = color.New(color.FgYellow)
	CriticalColor = color.New(color.FgRed, color.Bold)
)

// GetPlainRateLabel returns a plain text label for a success or show-up
// rate. This is the core logic used for CSV, JSON, and table printing.
func GetPlainRateLabel(rate float64) string {
	switch {
	case rate >= 85:
		return StrongValue
	case rate >= 60:
		return HealthyValue
	case rate >= 35:
		return LaggingValue
	default:
		return CriticalValue
	}
}

// GetColorRateLabel returns a colored label for console table output.
// It uses GetPlainRateLabel to determine the string, and then applies the
// appropriate color.
func GetColorRateLabel(rate float64) string {
	text := GetPlainRateLabel(rate)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case HealthyValue:
		return HealthyColor.Sprint(text)
	case LaggingValue:
		return LaggingColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
