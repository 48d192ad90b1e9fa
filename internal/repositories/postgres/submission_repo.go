package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
	"gorm.io/gorm"
)

type SubmissionFilter struct {
	CreatedBy    string
	ConsultantID string
	VendorID     string
	Status       models.SubmissionStatus
	From         *time.Time
	To           *time.Time
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	List(ctx context.Context, f SubmissionFilter) ([]models.Submission, error)
	Update(ctx context.Context, s *models.Submission) error
	Delete(ctx context.Context, id string) error

	// SetStatus overwrites the status column (and updated_at) without
	// touching the rest of the row.
	SetStatus(ctx context.Context, id string, status models.SubmissionStatus, now time.Time) error

	// PendingFollowUps returns non-terminal submissions that have a
	// next_follow_up_date set, soonest first. dueBefore (optional)
	// restricts to rows already due at that instant.
	PendingFollowUps(ctx context.Context, createdBy string, dueBefore *time.Time) ([]models.Submission, error)
}

type submissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, s *models.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	var s models.Submission
	err := r.db.WithContext(ctx).
		Preload("Consultant").
		Preload("Vendor").
		Where("id = ?", id).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *submissionRepo) List(ctx context.Context, f SubmissionFilter) ([]models.Submission, error) {
	q := r.db.WithContext(ctx).Model(&models.Submission{}).
		Preload("Consultant").
		Preload("Vendor")
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.ConsultantID != "" {
		q = q.Where("consultant_id = ?", f.ConsultantID)
	}
	if f.VendorID != "" {
		q = q.Where("vendor_id = ?", f.VendorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("submission_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("submission_date < ?", *f.To)
	}
	var out []models.Submission
	err := q.Order("submission_date DESC").Find(&out).Error
	return out, err
}

func (r *submissionRepo) Update(ctx context.Context, s *models.Submission) error {
	return r.db.WithContext(ctx).
		Omit("Consultant", "Vendor").
		Save(s).Error
}

func (r *submissionRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Submission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *submissionRepo) SetStatus(ctx context.Context, id string, status models.SubmissionStatus, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *submissionRepo) PendingFollowUps(ctx context.Context, createdBy string, dueBefore *time.Time) ([]models.Submission, error) {
	q := r.db.WithContext(ctx).Model(&models.Submission{}).
		Preload("Consultant").
		Preload("Vendor").
		Where("next_follow_up_date IS NOT NULL").
		Where("status NOT IN ?", []models.SubmissionStatus{models.SubmissionHired, models.SubmissionRejected})
	if createdBy != "" {
		q = q.Where("created_by = ?", createdBy)
	}
	if dueBefore != nil {
		q = q.Where("next_follow_up_date <= ?", *dueBefore)
	}
	var out []models.Submission
	err := q.Order("next_follow_up_date ASC").Find(&out).Error
	return out, err
}
