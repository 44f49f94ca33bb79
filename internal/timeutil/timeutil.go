package timeutil

import "time"

// LogTimestampLayout is the visitor log timestamp format (yyyy-MM-dd HH:mm:ss).
const LogTimestampLayout = "2006-01-02 15:04:05"

// FormatLogTimestamp formats a time for the visitor log in its current location.
func FormatLogTimestamp(t time.Time) string {
	return t.Format(LogTimestampLayout)
}
