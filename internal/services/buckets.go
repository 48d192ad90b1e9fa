package services

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// bucketKey formats a date into the bucket key the dashboards key their
// series by: 2006-01-02 (daily), 2006-W02 with the ISO week (weekly),
// 2006-01 (monthly).
func bucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeekly:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case GranularityMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// bucketSeries counts dates per bucket key, ascending by key. All three
// key formats sort chronologically as strings.
func bucketSeries(dates []time.Time, g Granularity) []TimePoint {
	counts := make(map[string]int)
	for _, d := range dates {
		counts[bucketKey(d.UTC(), g)]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TimePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, TimePoint{Bucket: k, Count: counts[k]})
	}
	return out
}

// roundPct is num/den as a whole percentage, half rounded up, 0 when the
// denominator is 0.
func roundPct(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

// calendarDays is the whole-day distance from a to b (positive when b is
// later), comparing UTC calendar dates so the time of day never matters.
func calendarDays(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
