package postgres

import (
	"context"
	"errors"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	ListBySubmission(ctx context.Context, submissionID string) ([]models.Interview, error)
	ListUpcoming(ctx context.Context, createdBy string) ([]models.Interview, error)
	Update(ctx context.Context, iv *models.Interview) error
	Delete(ctx context.Context, id string) error
}

type interviewRepo struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &iv, err
}

func (r *interviewRepo) ListBySubmission(ctx context.Context, submissionID string) ([]models.Interview, error) {
	var out []models.Interview
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("interview_date ASC").
		Find(&out).Error
	return out, err
}

func (r *interviewRepo) ListUpcoming(ctx context.Context, createdBy string) ([]models.Interview, error) {
	q := r.db.WithContext(ctx).Model(&models.Interview{}).
		Preload("Submission").
		Preload("Submission.Consultant").
		Preload("Submission.Vendor").
		Where("status IN ?", []models.InterviewStatus{models.InterviewScheduled, models.InterviewRescheduled})
	if createdBy != "" {
		q = q.Where("created_by = ?", createdBy)
	}
	var out []models.Interview
	err := q.Order("interview_date ASC").Find(&out).Error
	return out, err
}

func (r *interviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	return r.db.WithContext(ctx).
		Omit("Submission").
		Save(iv).Error
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Interview{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
