package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a dollar value for CSV output with 2 decimal places.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatMillions renders a dollar value in millions with 4 decimal places,
// matching the formatted table variants.
func formatMillions(f float64) string {
	return fmt.Sprintf("%.4f", f/1_000_000)
}

// formatWAR keeps the value metric at full precision; it is already a
// small scalar.
func formatWAR(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an integer for CSV output.
func formatInt(i int) string {
	return strconv.Itoa(i)
}
