package gateway

import (
	"fmt"
	"time"
)

// FormatSendTime renders a send time as UTC ISO-8601 with exactly nine
// fractional digits, e.g. "2026-08-26T09:15:04.000000123Z". The fixed
// width keeps lexicographic string order equal to chronological order.
func FormatSendTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s.%09dZ", t.Format("2006-01-02T15:04:05"), t.Nanosecond())
}
