package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatSendTime_NineFractionalDigits(t *testing.T) {
	req := require.New(t)

	ts := time.Unix(1784106000, 42).UTC()
	req.Equal("2026-07-15T09:00:00.000000042Z", FormatSendTime(ts))
}

func TestFormatSendTime_ConvertsToUTC(t *testing.T) {
	req := require.New(t)

	paris := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2026, 8, 26, 11, 30, 0, 500, paris)
	req.Equal("2026-08-26T09:30:00.000000500Z", FormatSendTime(ts))
}

func TestFormatSendTime_LexicographicOrderMatchesChronological(t *testing.T) {
	req := require.New(t)

	// Rollover cases are where naive formatting breaks ordering
	base := time.Date(2026, 8, 26, 9, 4, 59, 999999999, time.UTC)
	pairs := [][2]time.Time{
		{base, base.Add(time.Nanosecond)},  // second rollover
		{base.Add(-time.Second), base},     // within the same minute
		{base, base.Add(55 * time.Second)}, // minute rollover
		{time.Unix(0, 1), time.Unix(1, 0)}, // epoch edge
	}
	for _, pair := range pairs {
		earlier, later := FormatSendTime(pair[0]), FormatSendTime(pair[1])
		req.Less(earlier, later)
	}
}
