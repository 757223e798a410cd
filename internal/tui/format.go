package tui

import (
	"fmt"
	"time"
)

// FormatTimeRemaining formats a countdown as mm:ss, clamped at zero.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatMinutes formats a minute total for display (e.g. "2h 15m",
// "45m").
func FormatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	h := total / 60
	m := total % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatSessionDate formats a session timestamp for lists and
// reports.
func FormatSessionDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
