package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type VendorService interface {
	Create(ctx context.Context, actor Actor, v *models.Vendor) (*models.Vendor, error)
	Get(ctx context.Context, actor Actor, id string) (*models.Vendor, error)
	List(ctx context.Context, actor Actor, status models.VendorStatus, search string) ([]models.Vendor, error)
	Update(ctx context.Context, actor Actor, v *models.Vendor) (*models.Vendor, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type vendorService struct {
	vendors pgrepo.VendorRepository
}

func NewVendorService(vendors pgrepo.VendorRepository) VendorService {
	return &vendorService{vendors: vendors}
}

func validVendorStatus(s models.VendorStatus) bool {
	switch s {
	case models.VendorActive, models.VendorPending, models.VendorInactive:
		return true
	}
	return false
}

func (s *vendorService) Create(ctx context.Context, actor Actor, v *models.Vendor) (*models.Vendor, error) {
	const op = "VendorService.Create"

	if v == nil || v.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if v.Status == "" {
		v.Status = models.VendorPending
	}
	if !validVendorStatus(v.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if v.RecruiterID == "" {
		v.RecruiterID = actor.UserID
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedBy = actor.UserID
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.vendors.Create(ctx, v); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create vendor", err)
	}
	return v, nil
}

func (s *vendorService) Get(ctx context.Context, actor Actor, id string) (*models.Vendor, error) {
	const op = "VendorService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	v, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "vendor not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get vendor", err)
	}
	if !actor.CanTouch(v.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return v, nil
}

func (s *vendorService) List(ctx context.Context, actor Actor, status models.VendorStatus, search string) ([]models.Vendor, error) {
	const op = "VendorService.List"

	out, err := s.vendors.List(ctx, pgrepo.VendorFilter{
		CreatedBy: actor.ScopeOwner(),
		Status:    status,
		Search:    search,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list vendors", err)
	}
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, actor Actor, v *models.Vendor) (*models.Vendor, error) {
	const op = "VendorService.Update"

	if v == nil || v.ID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if v.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if !validVendorStatus(v.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if !actor.CanTouch(v.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}

	v.UpdatedAt = time.Now().UTC()
	if err := s.vendors.Update(ctx, v); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update vendor", err)
	}
	return v, nil
}

func (s *vendorService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "VendorService.Delete"

	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.vendors.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete vendor", err)
	}
	return nil
}
