package utils

import (
	"fmt"
)

// FormatDuration takes a duration in seconds and formats it as HH:MM:SS
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
