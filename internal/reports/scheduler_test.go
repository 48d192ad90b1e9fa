package reports

import (
	"context"
	"testing"
	"time"
)

func testScheduler(svc *Service) *Scheduler {
	return NewScheduler(svc, quietLogger(), "production", time.UTC)
}

func TestDuePeriods(t *testing.T) {
	s := testScheduler(nil)

	cases := []struct {
		name string
		now  time.Time
		want []Period
	}{
		{"off hour", time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC), nil},
		{"plain friday", time.Date(2026, 1, 30, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily}},
		{"last day of month", time.Date(2026, 1, 31, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily, PeriodMonthly}},
		{"monday", time.Date(2026, 2, 2, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily, PeriodWeekly}},
		{"feb 28 non-leap year", time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily, PeriodMonthly}},
		{"dec 31", time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily, PeriodMonthly}},
		// Monday Aug 31: every trigger lines up at once.
		{"month end monday", time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC), []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.duePeriods(c.now)
			if len(got) != len(c.want) {
				t.Fatalf("duePeriods = %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("duePeriods = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestDuePeriodsRespectsSendHour(t *testing.T) {
	s := testScheduler(nil)
	s.SendHour = 7
	if got := s.duePeriods(time.Date(2026, 1, 30, 18, 0, 0, 0, time.UTC)); got != nil {
		t.Errorf("default hour still firing: %v", got)
	}
	if got := s.duePeriods(time.Date(2026, 1, 30, 7, 0, 0, 0, time.UTC)); len(got) != 1 {
		t.Errorf("custom hour not firing: %v", got)
	}
}

func TestFireSurvivesDeliveryFailure(t *testing.T) {
	// An unconfigured service fails every Run; fire must swallow that.
	svc := newTestReportService(&fakeAnalytics{}, nil, nil)
	s := testScheduler(svc)

	s.fire(context.Background(), time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC))
}

func TestFireSendsEveryDuePeriod(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestReportService(&fakeAnalytics{}, sender, nil)
	s := testScheduler(svc)

	// Monday Aug 31, 2026 at 18:00: daily, weekly and monthly together.
	s.fire(context.Background(), time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC))
	if sender.sent != 3 {
		t.Errorf("sent %d reports, want 3", sender.sent)
	}
}

func TestStartDisabledOutsideProduction(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestReportService(&fakeAnalytics{}, sender, nil)
	s := NewScheduler(svc, quietLogger(), "development", time.UTC)
	s.clock = func() time.Time { return time.Date(2026, 8, 31, 17, 59, 59, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	// No loop was armed, so nothing can ever send.
	time.Sleep(10 * time.Millisecond)
	if sender.sent != 0 {
		t.Errorf("non-production scheduler sent %d reports", sender.sent)
	}
}

func TestNextHour(t *testing.T) {
	now := time.Date(2026, 8, 5, 17, 59, 30, 0, time.UTC)
	if got := nextHour(now); !got.Equal(time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("nextHour = %v", got)
	}
	onTheHour := time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC)
	if got := nextHour(onTheHour); !got.Equal(time.Date(2026, 8, 5, 19, 0, 0, 0, time.UTC)) {
		t.Errorf("nextHour on the hour = %v", got)
	}
}
