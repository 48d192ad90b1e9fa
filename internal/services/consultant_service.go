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

// Consultants are a shared pool: admins create them, every recruiter can
// see and edit any of them. Only submissions, interviews and vendors carry
// per-recruiter visibility.
type ConsultantService interface {
	Create(ctx context.Context, actor Actor, c *models.Consultant) (*models.Consultant, error)
	Get(ctx context.Context, actor Actor, id string) (*models.Consultant, error)
	List(ctx context.Context, actor Actor, status models.ConsultantStatus, search string) ([]models.Consultant, error)
	Update(ctx context.Context, actor Actor, c *models.Consultant) (*models.Consultant, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type consultantService struct {
	consultants pgrepo.ConsultantRepository
}

func NewConsultantService(consultants pgrepo.ConsultantRepository) ConsultantService {
	return &consultantService{consultants: consultants}
}

func validConsultantStatus(s models.ConsultantStatus) bool {
	switch s {
	case models.ConsultantActive, models.ConsultantPlaced, models.ConsultantInactive:
		return true
	}
	return false
}

func (s *consultantService) Create(ctx context.Context, actor Actor, c *models.Consultant) (*models.Consultant, error) {
	const op = "ConsultantService.Create"

	if !actor.IsAdmin() {
		return nil, utils.E(utils.CodeForbidden, op, "only admins can create consultants", nil)
	}
	if c == nil || c.FullName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "full_name is required", nil)
	}
	if c.Status == "" {
		c.Status = models.ConsultantActive
	}
	if !validConsultantStatus(c.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedBy = actor.UserID
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.consultants.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create consultant", err)
	}
	return c, nil
}

func (s *consultantService) Get(ctx context.Context, actor Actor, id string) (*models.Consultant, error) {
	const op = "ConsultantService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	c, err := s.consultants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "consultant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get consultant", err)
	}
	return c, nil
}

func (s *consultantService) List(ctx context.Context, actor Actor, status models.ConsultantStatus, search string) ([]models.Consultant, error) {
	const op = "ConsultantService.List"

	out, err := s.consultants.List(ctx, pgrepo.ConsultantFilter{
		Status: status,
		Search: search,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list consultants", err)
	}
	return out, nil
}

func (s *consultantService) Update(ctx context.Context, actor Actor, c *models.Consultant) (*models.Consultant, error) {
	const op = "ConsultantService.Update"

	if c == nil || c.ID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if c.FullName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "full_name is required", nil)
	}
	if !validConsultantStatus(c.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.consultants.Update(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update consultant", err)
	}
	return c, nil
}

func (s *consultantService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "ConsultantService.Delete"

	// Removal from the shared pool mirrors creation: admin only.
	if !actor.IsAdmin() {
		return utils.E(utils.CodeForbidden, op, "only admins can delete consultants", nil)
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.consultants.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete consultant", err)
	}
	return nil
}
