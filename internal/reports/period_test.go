package reports

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Errorf("ParsePeriod(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePeriod("yearly"); err == nil {
		t.Error("ParsePeriod accepted yearly")
	}
}

func TestDailyRange(t *testing.T) {
	now := time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC)
	from, to := PeriodDaily.Range(now)
	if want := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}
}

func TestWeeklyRange(t *testing.T) {
	// Wednesday Aug 5, 2026: prior Monday-based week is Jul 27 - Aug 3.
	now := time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC)
	from, to := PeriodWeekly.Range(now)
	if want := time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}

	// Fired on a Monday the window is the week just ended.
	monday := time.Date(2026, 8, 3, 18, 0, 0, 0, time.UTC)
	from, to = PeriodWeekly.Range(monday)
	if want := time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("monday from = %v, want %v", from, want)
	}
	if want := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("monday to = %v, want %v", to, want)
	}

	// Sunday still points at the week that started six days earlier.
	sunday := time.Date(2026, 8, 9, 18, 0, 0, 0, time.UTC)
	from, _ = PeriodWeekly.Range(sunday)
	if want := time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("sunday from = %v, want %v", from, want)
	}
}

func TestMonthlyRange(t *testing.T) {
	now := time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)
	from, to := PeriodMonthly.Range(now)
	if want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}

	// January rolls back into the previous year.
	jan := time.Date(2026, 1, 31, 18, 0, 0, 0, time.UTC)
	from, to = PeriodMonthly.Range(jan)
	if want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("jan from = %v, want %v", from, want)
	}
	if want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("jan to = %v, want %v", to, want)
	}
}

func TestRangeHonoursLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 8, 5, 18, 0, 0, 0, loc)
	from, to := PeriodDaily.Range(now)
	if from.Location() != loc || to.Location() != loc {
		t.Error("range left the caller's location")
	}
	if from.Hour() != 0 || to.Hour() != 0 {
		t.Error("range not aligned to local midnight")
	}
}
