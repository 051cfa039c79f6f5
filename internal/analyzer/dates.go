package analyzer

import (
	"math"
	"time"
)

const dayMillis = 24 * 60 * 60 * 1000

// DaysBetween returns the absolute day difference between two instants,
// rounded to the nearest whole day. The order of arguments does not matter.
func DaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Round(float64(d.Milliseconds()) / dayMillis))
}

// midnight truncates an instant to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey formats a day as "2006-01-02" for calendar map lookups.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// monthKey formats a month as "2006-01" for monthly bucketing.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
