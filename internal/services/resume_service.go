package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/storage"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type ResumeService interface {
	Upload(ctx context.Context, actor Actor, consultantID, fileName string, fileSize int, mimeType string, r io.Reader) (*models.ResumeFile, error)
	Latest(ctx context.Context, actor Actor, consultantID string) (*models.ResumeFile, error)
}

type resumeService struct {
	resumes     pgrepo.ResumeRepository
	consultants pgrepo.ConsultantRepository
	uploader    storage.Uploader
}

func NewResumeService(resumes pgrepo.ResumeRepository, consultants pgrepo.ConsultantRepository, uploader storage.Uploader) ResumeService {
	return &resumeService{resumes: resumes, consultants: consultants, uploader: uploader}
}

func (s *resumeService) Upload(ctx context.Context, actor Actor, consultantID, fileName string, fileSize int, mimeType string, r io.Reader) (*models.ResumeFile, error) {
	const op = "ResumeService.Upload"

	if consultantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "consultant_id is required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "file storage is not configured", nil)
	}

	c, err := s.consultants.GetByID(ctx, consultantID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "consultant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get consultant", err)
	}

	objectName := "resumes/" + consultantID + "/" + uuid.NewString() + ".pdf"
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	meta, err := json.Marshal(map[string]any{
		"original_name": fileName,
		"size_bytes":    fileSize,
		"consultant":    c.FullName,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode resume metadata", err)
	}

	row := &models.ResumeFile{
		ID:           uuid.NewString(),
		ConsultantID: consultantID,
		FileName:     fileName,
		FilePath:     storedPath,
		FileSize:     fileSize,
		MimeType:     mimeType,
		Meta:         meta,
		UploadedBy:   actor.UserID,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.resumes.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume metadata", err)
	}

	c.ResumeFileID = &row.ID
	c.UpdatedAt = time.Now().UTC()
	if err := s.consultants.Update(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to attach resume to consultant", err)
	}

	return row, nil
}

func (s *resumeService) Latest(ctx context.Context, actor Actor, consultantID string) (*models.ResumeFile, error) {
	const op = "ResumeService.Latest"

	if _, err := s.consultants.GetByID(ctx, consultantID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "consultant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get consultant", err)
	}

	row, err := s.resumes.LatestByConsultant(ctx, consultantID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no resume on file", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get resume", err)
	}
	return row, nil
}
