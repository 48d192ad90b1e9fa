package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

func newTestSubmissionService(t *testing.T) (*submissionService, *fakeSubmissionRepo) {
	t.Helper()
	sr := newFakeSubmissionRepo()
	cr := newFakeConsultantRepo(&models.Consultant{ID: "c1", FullName: "Maya"})
	vr := newFakeVendorRepo(&models.Vendor{ID: "v1", Name: "TekPro"})
	return NewSubmissionService(sr, cr, vr).(*submissionService), sr
}

func TestSubmissionCreateDefaults(t *testing.T) {
	svc, sr := newTestSubmissionService(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }

	out, err := svc.Create(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, &models.Submission{
		ConsultantID:  "c1",
		VendorID:      "v1",
		PositionTitle: "DevOps Engineer",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != models.SubmissionSubmitted {
		t.Errorf("status = %q, want submitted", out.Status)
	}
	if !out.SubmissionDate.Equal(now) {
		t.Errorf("submission_date = %v, want clock time", out.SubmissionDate)
	}
	if out.CreatedBy != "r1" {
		t.Errorf("created_by = %q, want r1", out.CreatedBy)
	}
	if out.ID == "" {
		t.Error("id not assigned")
	}
	if len(sr.created) != 1 {
		t.Fatalf("created %d rows, want 1", len(sr.created))
	}
}

func TestSubmissionCreateUnknownConsultant(t *testing.T) {
	svc, _ := newTestSubmissionService(t)

	_, err := svc.Create(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, &models.Submission{
		ConsultantID:  "missing",
		VendorID:      "v1",
		PositionTitle: "DevOps Engineer",
	})
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeNotFound {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

func TestSubmissionTerminalStatusClearsFollowUp(t *testing.T) {
	svc, sr := newTestSubmissionService(t)
	followUp := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	for _, status := range []models.SubmissionStatus{models.SubmissionHired, models.SubmissionRejected} {
		out, err := svc.Create(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, &models.Submission{
			ConsultantID:     "c1",
			VendorID:         "v1",
			PositionTitle:    "DevOps Engineer",
			Status:           status,
			NextFollowUpDate: &followUp,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.NextFollowUpDate != nil {
			t.Errorf("create with %s kept next_follow_up_date", status)
		}
	}

	// Same rule on update, even when the follow-up was already stored.
	sub := sr.created[0]
	sub.Status = models.SubmissionHired
	sub.NextFollowUpDate = &followUp
	out, err := svc.Update(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, sub)
	if err != nil {
		t.Fatal(err)
	}
	if out.NextFollowUpDate != nil {
		t.Error("update to hired kept next_follow_up_date")
	}
}

func TestSubmissionNonTerminalKeepsFollowUp(t *testing.T) {
	svc, _ := newTestSubmissionService(t)
	followUp := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	out, err := svc.Create(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, &models.Submission{
		ConsultantID:     "c1",
		VendorID:         "v1",
		PositionTitle:    "DevOps Engineer",
		Status:           models.SubmissionUnderReview,
		NextFollowUpDate: &followUp,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.NextFollowUpDate == nil || !out.NextFollowUpDate.Equal(followUp) {
		t.Error("under_review lost next_follow_up_date")
	}
}

func TestSubmissionGetScoped(t *testing.T) {
	svc, sr := newTestSubmissionService(t)
	sr.byID["s1"] = &models.Submission{ID: "s1", CreatedBy: "r1"}

	if _, err := svc.Get(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, "s1"); err != nil {
		t.Errorf("owner denied: %v", err)
	}
	if _, err := svc.Get(context.Background(), Actor{UserID: "admin", Role: models.RoleAdmin}, "s1"); err != nil {
		t.Errorf("admin denied: %v", err)
	}
	_, err := svc.Get(context.Background(), Actor{UserID: "r2", Role: models.RoleRecruiter}, "s1")
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeForbidden {
		t.Errorf("other recruiter: err = %v, want FORBIDDEN", err)
	}
}

func TestSubmissionInvalidStatusRejected(t *testing.T) {
	svc, _ := newTestSubmissionService(t)

	_, err := svc.Create(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter}, &models.Submission{
		ConsultantID:  "c1",
		VendorID:      "v1",
		PositionTitle: "DevOps Engineer",
		Status:        "on_hold",
	})
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeInvalidArgument {
		t.Fatalf("err = %v, want INVALID_ARGUMENT", err)
	}
}
