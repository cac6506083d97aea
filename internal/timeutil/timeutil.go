package timeutil

import (
	"math"
	"time"
)

// MillisPerMinute is the length of one game minute in timeline milliseconds.
const MillisPerMinute int64 = 60_000

// MinuteMarkMS returns the match-clock offset in milliseconds for minute m.
func MinuteMarkMS(m int) int64 {
	return int64(m) * MillisPerMinute
}

// MinuteStamp converts a match-clock offset to minutes rounded to one decimal.
func MinuteStamp(ms int64) float64 {
	return math.Round(float64(ms)/float64(MillisPerMinute)*10) / 10
}

// Minutes converts whole seconds to fractional minutes.
func Minutes(seconds int64) float64 {
	return float64(seconds) / 60
}

// FromUnixMillis returns the UTC time for a unix millisecond timestamp.
func FromUnixMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// AbsDiffMS returns |a - b|.
func AbsDiffMS(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
