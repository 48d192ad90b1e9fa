package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/mailer"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	mongorepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/mongo"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

// Service generates and delivers one report per call. The scheduler and
// the manual trigger endpoint share it, so both paths behave identically.
type Service struct {
	analytics  pgrepo.AnalyticsRepository
	sender     mailer.Sender
	runs       mongorepo.ReportRunRepository // optional audit log
	logger     *logrus.Logger
	from       string
	recipients []string
	loc        *time.Location
	clock      func() time.Time
}

func NewService(
	analytics pgrepo.AnalyticsRepository,
	sender mailer.Sender,
	runs mongorepo.ReportRunRepository,
	logger *logrus.Logger,
	from string,
	recipients []string,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		analytics:  analytics,
		sender:     sender,
		runs:       runs,
		logger:     logger,
		from:       from,
		recipients: recipients,
		loc:        loc,
		clock:      time.Now,
	}
}

// Run generates the report for p's window and hands it to the email
// channel. Missing delivery configuration aborts the attempt as a
// configuration error; it is never retried.
func (s *Service) Run(ctx context.Context, p Period, manual bool) (*models.ReportRun, error) {
	const op = "reports.Service.Run"

	now := s.clock().In(s.loc)
	from, to := p.Range(now)

	run := &models.ReportRun{
		ID:         uuid.NewString(),
		Period:     string(p),
		RangeStart: from.UTC(),
		RangeEnd:   to.UTC(),
		Recipients: s.recipients,
		Manual:     manual,
		RanAt:      now.UTC(),
	}

	if s.sender == nil || s.from == "" || len(s.recipients) == 0 {
		run.Status = models.ReportRunSkipped
		run.Error = "report sender or recipients not configured"
		s.logger.WithField("period", p).Error("report aborted: sender or recipients not configured")
		s.record(ctx, run)
		return run, utils.E(utils.CodeUnavailable, op, "report delivery is not configured", nil)
	}

	rows, err := s.analytics.ReportRows(ctx, from, to)
	if err != nil {
		run.Status = models.ReportRunFailed
		run.Error = err.Error()
		s.record(ctx, run)
		return run, utils.E(utils.CodeInternal, op, "failed to load report rows", err)
	}
	run.SubmissionCount = len(rows)

	subject, html, err := Generate(rows, p, from, to)
	if err != nil {
		run.Status = models.ReportRunFailed
		run.Error = err.Error()
		s.record(ctx, run)
		return run, utils.E(utils.CodeInternal, op, "failed to render report", err)
	}

	if err := s.sender.SendHTML(ctx, s.from, s.recipients, subject, html); err != nil {
		run.Status = models.ReportRunFailed
		run.Error = err.Error()
		s.logger.WithError(err).WithField("period", p).Error("report delivery failed")
		s.record(ctx, run)
		return run, utils.E(utils.CodeUnavailable, op, "failed to send report", err)
	}

	run.Status = models.ReportRunSent
	s.logger.WithFields(logrus.Fields{
		"period":      p,
		"submissions": len(rows),
		"recipients":  len(s.recipients),
	}).Info("report sent")
	s.record(ctx, run)
	return run, nil
}

func (s *Service) RecentRuns(ctx context.Context, limit int64) ([]models.ReportRun, error) {
	const op = "reports.Service.RecentRuns"

	if s.runs == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "report run log is not configured", nil)
	}
	out, err := s.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list report runs", err)
	}
	return out, nil
}

func (s *Service) record(ctx context.Context, run *models.ReportRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Insert(ctx, run); err != nil {
		s.logger.WithError(err).Warn("failed to record report run")
	}
}
