package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
)

func reportWindow() (time.Time, time.Time) {
	return time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
}

func TestGenerateEmptyReport(t *testing.T) {
	from, to := reportWindow()
	subject, html, err := Generate(nil, PeriodWeekly, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "No submissions were recorded in this period.") {
		t.Error("empty report missing the no-submissions message")
	}
	if strings.Contains(html, "By recruiter") {
		t.Error("empty report rendered the recruiter table")
	}
	if !strings.Contains(subject, "Weekly Submission Report") {
		t.Errorf("subject = %q", subject)
	}
}

func TestGenerateReportTables(t *testing.T) {
	from, to := reportWindow()
	rows := []models.ReportRow{
		{
			SubmissionDate: time.Date(2026, 7, 28, 0, 0, 0, 0, time.UTC),
			ConsultantName: "Maya Patel",
			PositionTitle:  "DevOps Engineer",
			ClientName:     "Acme",
			EndClientName:  "MegaBank",
			VendorName:     "TekPro",
			Status:         models.SubmissionUnderReview,
			SubmittedBy:    "Asha",
		},
		{
			SubmissionDate: time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC),
			ConsultantName: "Ravi Kumar",
			PositionTitle:  "Java Developer",
			VendorName:     "TekPro",
			Status:         models.SubmissionHired,
			SubmittedBy:    "Asha",
		},
		{
			SubmissionDate: time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC),
			ConsultantName: "Maya Patel",
			PositionTitle:  "SRE",
			VendorName:     "CloudX",
			Status:         models.SubmissionSubmitted,
			SubmittedBy:    "Dev",
		},
	}

	_, html, err := Generate(rows, PeriodWeekly, from, to)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<strong>3</strong> submissions",
		"<strong>2</strong> consultants",
		"<strong>2</strong> vendors",
		"<strong>2</strong> recruiters",
		"Maya Patel", "Ravi Kumar", "TekPro", "CloudX",
		"Jul 27, 2026 – Aug 2, 2026",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// Status labels render with spaces, not underscores.
	if !strings.Contains(html, ">under review<") {
		t.Error("under_review badge not humanized")
	}
	// Asha has more submissions, so her row comes first.
	if strings.Index(html, "Asha") > strings.Index(html, "Dev") {
		t.Error("recruiter rows not sorted by submissions")
	}
}

func TestGenerateDailySubject(t *testing.T) {
	from := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	subject, _, err := Generate(nil, PeriodDaily, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(subject, "Daily Submission Report – Aug 4, 2026") {
		t.Errorf("subject = %q", subject)
	}
}

func TestGenerateEscapesHTML(t *testing.T) {
	from, to := reportWindow()
	rows := []models.ReportRow{{
		SubmissionDate: from,
		ConsultantName: "<script>alert(1)</script>",
		VendorName:     "TekPro",
		Status:         models.SubmissionSubmitted,
		SubmittedBy:    "Asha",
	}}
	_, html, err := Generate(rows, PeriodWeekly, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("consultant name not escaped")
	}
}
