package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// consoleNotifier prints transient alerts raised by the change feed
// bridge. Alerts go to stderr so piped output stays clean.
type consoleNotifier struct {
	useColors bool
}

// Notify prints a single alert line.
func (n *consoleNotifier) Notify(title, detail string) error {
	if n.useColors {
		title = color.New(color.FgCyan, color.Bold).Sprint(title)
	}
	_, err := fmt.Fprintf(os.Stderr, "🔔 %s: %s\n", title, detail)
	return err
}
