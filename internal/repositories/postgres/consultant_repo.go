package postgres

import (
	"context"
	"errors"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
	"gorm.io/gorm"
)

type ConsultantFilter struct {
	CreatedBy string // empty = all owners
	Status    models.ConsultantStatus
	Search    string // matches name or email, case-insensitive
}

type ConsultantRepository interface {
	Create(ctx context.Context, c *models.Consultant) error
	GetByID(ctx context.Context, id string) (*models.Consultant, error)
	List(ctx context.Context, f ConsultantFilter) ([]models.Consultant, error)
	Update(ctx context.Context, c *models.Consultant) error
	Delete(ctx context.Context, id string) error
}

type consultantRepo struct {
	db *gorm.DB
}

func NewConsultantRepo(db *gorm.DB) ConsultantRepository {
	return &consultantRepo{db: db}
}

func (r *consultantRepo) Create(ctx context.Context, c *models.Consultant) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *consultantRepo) GetByID(ctx context.Context, id string) (*models.Consultant, error) {
	var c models.Consultant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *consultantRepo) List(ctx context.Context, f ConsultantFilter) ([]models.Consultant, error) {
	q := r.db.WithContext(ctx).Model(&models.Consultant{})
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	var out []models.Consultant
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *consultantRepo) Update(ctx context.Context, c *models.Consultant) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *consultantRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Consultant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
