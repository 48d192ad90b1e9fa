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

type SubmissionService interface {
	Create(ctx context.Context, actor Actor, sub *models.Submission) (*models.Submission, error)
	Get(ctx context.Context, actor Actor, id string) (*models.Submission, error)
	List(ctx context.Context, actor Actor, f pgrepo.SubmissionFilter) ([]models.Submission, error)
	Update(ctx context.Context, actor Actor, sub *models.Submission) (*models.Submission, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type submissionService struct {
	submissions pgrepo.SubmissionRepository
	consultants pgrepo.ConsultantRepository
	vendors     pgrepo.VendorRepository
	clock       func() time.Time
}

func NewSubmissionService(submissions pgrepo.SubmissionRepository, consultants pgrepo.ConsultantRepository, vendors pgrepo.VendorRepository) SubmissionService {
	return &submissionService{
		submissions: submissions,
		consultants: consultants,
		vendors:     vendors,
		clock:       time.Now,
	}
}

// Status transitions are deliberately not validated: the client owns the
// pipeline. The only authoritative rule is that a terminal submission
// carries no pending follow-up.
func validSubmissionStatus(s models.SubmissionStatus) bool {
	switch s {
	case models.SubmissionSubmitted, models.SubmissionUnderReview,
		models.SubmissionInterviewScheduled, models.SubmissionHired,
		models.SubmissionRejected, models.SubmissionWithdrawn:
		return true
	}
	return false
}

func (s *submissionService) Create(ctx context.Context, actor Actor, sub *models.Submission) (*models.Submission, error) {
	const op = "SubmissionService.Create"

	if sub == nil || sub.ConsultantID == "" || sub.VendorID == "" || sub.PositionTitle == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "consultant_id, vendor_id and position_title are required", nil)
	}
	if sub.Status == "" {
		sub.Status = models.SubmissionSubmitted
	}
	if !validSubmissionStatus(sub.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	if _, err := s.consultants.GetByID(ctx, sub.ConsultantID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "consultant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check consultant", err)
	}
	if _, err := s.vendors.GetByID(ctx, sub.VendorID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "vendor not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check vendor", err)
	}

	now := s.clock().UTC()
	if sub.SubmissionDate.IsZero() {
		sub.SubmissionDate = now
	}
	if sub.Status.IsTerminal() {
		sub.NextFollowUpDate = nil
	}
	sub.ID = uuid.NewString()
	sub.CreatedBy = actor.UserID
	sub.CreatedAt = now
	sub.UpdatedAt = now
	sub.Consultant = nil
	sub.Vendor = nil

	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create submission", err)
	}
	return sub, nil
}

func (s *submissionService) Get(ctx context.Context, actor Actor, id string) (*models.Submission, error) {
	const op = "SubmissionService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get submission", err)
	}
	if !actor.CanTouch(sub.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return sub, nil
}

func (s *submissionService) List(ctx context.Context, actor Actor, f pgrepo.SubmissionFilter) ([]models.Submission, error) {
	const op = "SubmissionService.List"

	f.CreatedBy = actor.ScopeOwner()
	out, err := s.submissions.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list submissions", err)
	}
	return out, nil
}

func (s *submissionService) Update(ctx context.Context, actor Actor, sub *models.Submission) (*models.Submission, error) {
	const op = "SubmissionService.Update"

	if sub == nil || sub.ID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if !validSubmissionStatus(sub.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if !actor.CanTouch(sub.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}

	// Terminal status ends follow-up tracking no matter what the caller
	// sent for next_follow_up_date.
	if sub.Status.IsTerminal() {
		sub.NextFollowUpDate = nil
	}
	sub.UpdatedAt = s.clock().UTC()

	if err := s.submissions.Update(ctx, sub); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update submission", err)
	}
	return sub, nil
}

func (s *submissionService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "SubmissionService.Delete"

	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.submissions.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete submission", err)
	}
	return nil
}
