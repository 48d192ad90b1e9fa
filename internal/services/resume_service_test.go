package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

func TestResumeUpload(t *testing.T) {
	cr := newFakeConsultantRepo(
		&models.Consultant{ID: "c1", FullName: "Maya Iyer", Status: models.ConsultantActive, CreatedBy: "admin-1"},
	)
	rr := &fakeResumeRepo{}
	up := &fakeUploader{}
	svc := NewResumeService(rr, cr, up)

	// Any recruiter may attach a resume, not just the consultant's creator.
	row, err := svc.Upload(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter},
		"c1", "maya-resume.pdf", 2048, "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if row.UploadedBy != "r1" {
		t.Errorf("uploaded_by = %q, want r1", row.UploadedBy)
	}
	if !strings.HasPrefix(row.FilePath, "gs://bucket/resumes/c1/") {
		t.Errorf("file_path = %q", row.FilePath)
	}
	if up.contentType != "application/pdf" {
		t.Errorf("content_type = %q", up.contentType)
	}

	var meta map[string]any
	if err := json.Unmarshal(row.Meta, &meta); err != nil {
		t.Fatalf("meta is not valid JSON: %v", err)
	}
	if meta["original_name"] != "maya-resume.pdf" {
		t.Errorf("meta original_name = %v", meta["original_name"])
	}
	if meta["size_bytes"] != float64(2048) {
		t.Errorf("meta size_bytes = %v", meta["size_bytes"])
	}

	c, _ := cr.GetByID(context.Background(), "c1")
	if c.ResumeFileID == nil || *c.ResumeFileID != row.ID {
		t.Errorf("consultant resume_file_id not linked to %s", row.ID)
	}

	latest, err := svc.Latest(context.Background(), Actor{UserID: "r2", Role: models.RoleRecruiter}, "c1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != row.ID {
		t.Errorf("latest = %s, want %s", latest.ID, row.ID)
	}
}

func TestResumeUploadUnknownConsultant(t *testing.T) {
	svc := NewResumeService(&fakeResumeRepo{}, newFakeConsultantRepo(), &fakeUploader{})

	_, err := svc.Upload(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter},
		"missing", "cv.pdf", 10, "application/pdf", strings.NewReader("x"))
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeNotFound {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

func TestResumeUploadWithoutStorage(t *testing.T) {
	svc := NewResumeService(&fakeResumeRepo{}, newFakeConsultantRepo(), nil)

	_, err := svc.Upload(context.Background(), Actor{UserID: "r1", Role: models.RoleRecruiter},
		"c1", "cv.pdf", 10, "application/pdf", strings.NewReader("x"))
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code != utils.CodeUnavailable {
		t.Fatalf("err = %v, want UNAVAILABLE", err)
	}
}
