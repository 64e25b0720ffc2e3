package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/calldeck/calldeck/internal/contract"
)

// GetMaxTableTextWidth calculates the maximum width for free-text columns
// (outcomes, notification titles) based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed numeric columns plus borders and padding
	available := termWidth - 45
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateText shortens a cell value to width runes with an ellipsis.
func truncateText(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
