package postgres

import (
	"context"
	"errors"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
	"gorm.io/gorm"
)

type VendorFilter struct {
	CreatedBy string
	Status    models.VendorStatus
	Search    string
}

type VendorRepository interface {
	Create(ctx context.Context, v *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	List(ctx context.Context, f VendorFilter) ([]models.Vendor, error)
	Update(ctx context.Context, v *models.Vendor) error
	Delete(ctx context.Context, id string) error
}

type vendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, v *models.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendorRepo) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	var v models.Vendor
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &v, err
}

func (r *vendorRepo) List(ctx context.Context, f VendorFilter) ([]models.Vendor, error) {
	q := r.db.WithContext(ctx).Model(&models.Vendor{})
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR contact_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	var out []models.Vendor
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *vendorRepo) Update(ctx context.Context, v *models.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vendorRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
