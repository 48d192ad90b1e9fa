package reports

import (
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

// Period selects which completed calendar window a report covers.
type Period string

const (
	PeriodDaily   Period = "daily"   // yesterday
	PeriodWeekly  Period = "weekly"  // the prior Monday-based calendar week
	PeriodMonthly Period = "monthly" // the prior calendar month
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", utils.E(utils.CodeInvalidArgument, "ParsePeriod", "period must be daily, weekly or monthly", nil)
}

// Range is the half-open [from, to) window the period covers, derived
// from a single now in now's location.
func (p Period) Range(now time.Time) (from, to time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodWeekly:
		// Monday of the current week, then one week back.
		offset := (int(now.Weekday()) + 6) % 7
		weekStart := midnight.AddDate(0, 0, -offset)
		return weekStart.AddDate(0, 0, -7), weekStart
	case PeriodMonthly:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart.AddDate(0, -1, 0), monthStart
	default:
		return midnight.AddDate(0, 0, -1), midnight
	}
}

func (p Period) Label() string {
	switch p {
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	default:
		return "Daily"
	}
}
