package postgres

import (
	"context"
	"errors"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Insert(ctx context.Context, f *models.ResumeFile) error
	LatestByConsultant(ctx context.Context, consultantID string) (*models.ResumeFile, error)
}

type resumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Insert(ctx context.Context, f *models.ResumeFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *resumeRepo) LatestByConsultant(ctx context.Context, consultantID string) (*models.ResumeFile, error) {
	var row models.ResumeFile
	err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("uploaded_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}
