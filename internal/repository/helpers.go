package repository

import "time"

const timeLayout = time.RFC3339Nano

// formatTime converts a timestamp to the UTC text form stored in SQLite.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp, returning the zero time for values
// that fail to parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
