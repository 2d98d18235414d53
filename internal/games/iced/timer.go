package iced

import "fmt"

// FormatTime renders seconds as minutes:seconds.hundredths, e.g. "1:05.25".
func FormatTime(seconds float64) string {
	minutes := int(seconds) / 60
	rest := seconds - float64(minutes*60)
	return fmt.Sprintf("%d:%05.2f", minutes, rest)
}
