package reports

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/mailer"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	mongorepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/mongo"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type fakeAnalytics struct {
	rows []models.ReportRow
	err  error

	gotFrom, gotTo time.Time
}

func (f *fakeAnalytics) StatusCounts(ctx context.Context, createdBy string, from, to *time.Time) (map[models.SubmissionStatus]int64, error) {
	return nil, nil
}

func (f *fakeAnalytics) SubmissionFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]pgrepo.SubmissionFact, error) {
	return nil, nil
}

func (f *fakeAnalytics) InterviewFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]pgrepo.InterviewFact, error) {
	return nil, nil
}

func (f *fakeAnalytics) ReportRows(ctx context.Context, from, to time.Time) ([]models.ReportRow, error) {
	f.gotFrom, f.gotTo = from, to
	return f.rows, f.err
}

type fakeSender struct {
	err      error
	sent     int
	lastTo   []string
	lastSubj string
	lastHTML string
}

func (f *fakeSender) SendHTML(ctx context.Context, from string, to []string, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	f.lastTo = to
	f.lastSubj = subject
	f.lastHTML = html
	return nil
}

type fakeRuns struct {
	inserted []models.ReportRun
}

func (f *fakeRuns) Insert(ctx context.Context, run *models.ReportRun) error {
	f.inserted = append(f.inserted, *run)
	return nil
}

func (f *fakeRuns) ListRecent(ctx context.Context, limit int64) ([]models.ReportRun, error) {
	return f.inserted, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestReportService(analytics *fakeAnalytics, sender *fakeSender, runs *fakeRuns) *Service {
	var s mailer.Sender
	if sender != nil {
		s = sender
	}
	var r mongorepo.ReportRunRepository
	if runs != nil {
		r = runs
	}
	svc := NewService(analytics, s, r, quietLogger(), "reports@example.com", []string{"boss@example.com"}, time.UTC)
	svc.clock = func() time.Time { return time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC) }
	return svc
}

func TestRunSendsReport(t *testing.T) {
	analytics := &fakeAnalytics{rows: []models.ReportRow{{
		SubmissionDate: time.Date(2026, 8, 4, 10, 0, 0, 0, time.UTC),
		ConsultantName: "Maya Patel",
		VendorName:     "TekPro",
		Status:         models.SubmissionSubmitted,
		SubmittedBy:    "Asha",
	}}}
	sender := &fakeSender{}
	runs := &fakeRuns{}
	svc := newTestReportService(analytics, sender, runs)

	run, err := svc.Run(context.Background(), PeriodDaily, false)
	if err != nil {
		t.Fatal(err)
	}
	if run.Status != models.ReportRunSent {
		t.Errorf("status = %q, want sent", run.Status)
	}
	if run.SubmissionCount != 1 {
		t.Errorf("submission_count = %d, want 1", run.SubmissionCount)
	}
	if sender.sent != 1 {
		t.Fatalf("sent %d mails, want 1", sender.sent)
	}
	if !strings.Contains(sender.lastHTML, "Maya Patel") {
		t.Error("mail body missing submission row")
	}
	// Daily at Aug 5: window is Aug 4.
	if want := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC); !analytics.gotFrom.Equal(want) {
		t.Errorf("query from = %v, want %v", analytics.gotFrom, want)
	}
	if len(runs.inserted) != 1 || runs.inserted[0].Status != models.ReportRunSent {
		t.Errorf("run log = %+v", runs.inserted)
	}
}

func TestRunSkippedWhenUnconfigured(t *testing.T) {
	runs := &fakeRuns{}
	svc := newTestReportService(&fakeAnalytics{}, nil, runs)

	run, err := svc.Run(context.Background(), PeriodDaily, true)
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeUnavailable {
		t.Fatalf("err = %v, want UNAVAILABLE", err)
	}
	if run.Status != models.ReportRunSkipped {
		t.Errorf("status = %q, want skipped", run.Status)
	}
	if len(runs.inserted) != 1 {
		t.Errorf("skipped run not recorded")
	}
}

func TestRunDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("brevo is down")}
	runs := &fakeRuns{}
	svc := newTestReportService(&fakeAnalytics{}, sender, runs)

	run, err := svc.Run(context.Background(), PeriodWeekly, false)
	if err == nil {
		t.Fatal("delivery failure returned nil error")
	}
	if run.Status != models.ReportRunFailed {
		t.Errorf("status = %q, want failed", run.Status)
	}
	if len(runs.inserted) != 1 || runs.inserted[0].Error == "" {
		t.Errorf("failed run not recorded with its error")
	}
}

func TestRunWithoutRunLog(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestReportService(&fakeAnalytics{}, sender, nil)

	if _, err := svc.Run(context.Background(), PeriodDaily, false); err != nil {
		t.Fatalf("run without mongo failed: %v", err)
	}
	if _, err := svc.RecentRuns(context.Background(), 10); err == nil {
		t.Error("RecentRuns without mongo should fail")
	}
}
