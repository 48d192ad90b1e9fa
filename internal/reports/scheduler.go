package reports

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler fires report generation on calendar triggers: daily at
// SendHour, weekly on WeeklyDay, monthly on the last day of the month
// (detected by tomorrow rolling over to the 1st). All checks happen in
// Location. It owns no global state; cancel the Start context to stop it.
type Scheduler struct {
	Service   *Service
	Logger    *logrus.Logger
	Env       string
	Location  *time.Location
	SendHour  int
	WeeklyDay time.Weekday

	clock func() time.Time
}

func NewScheduler(svc *Service, logger *logrus.Logger, env string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		Service:   svc,
		Logger:    logger,
		Env:       env,
		Location:  loc,
		SendHour:  18,
		WeeklyDay: time.Monday,
		clock:     time.Now,
	}
}

// Start arms the scheduler. Outside production it logs and does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	if s.Env != "production" {
		s.Logger.WithField("env", s.Env).Info("report scheduler disabled (not production)")
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"hour":     s.SendHour,
		"timezone": s.Location.String(),
	}).Info("report scheduler started")
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	for {
		now := s.clock().In(s.Location)
		next := nextHour(now)

		select {
		case <-ctx.Done():
			s.Logger.Info("report scheduler stopped")
			return
		case <-time.After(next.Sub(now)):
		}

		s.fire(ctx, s.clock().In(s.Location))
	}
}

// fire runs every period due at the given instant. Delivery failures are
// logged and dropped; the next calendar trigger is the only retry.
func (s *Scheduler) fire(ctx context.Context, now time.Time) {
	for _, p := range s.duePeriods(now) {
		if _, err := s.Service.Run(ctx, p, false); err != nil {
			s.Logger.WithError(err).WithField("period", p).Error("scheduled report failed")
		}
	}
}

func (s *Scheduler) duePeriods(now time.Time) []Period {
	if now.Hour() != s.SendHour {
		return nil
	}
	due := []Period{PeriodDaily}
	if now.Weekday() == s.WeeklyDay {
		due = append(due, PeriodWeekly)
	}
	if now.AddDate(0, 0, 1).Day() == 1 {
		due = append(due, PeriodMonthly)
	}
	return due
}

func nextHour(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}
