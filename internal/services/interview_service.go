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

type InterviewService interface {
	Create(ctx context.Context, actor Actor, iv *models.Interview) (*models.Interview, error)
	Get(ctx context.Context, actor Actor, id string) (*models.Interview, error)
	ListBySubmission(ctx context.Context, actor Actor, submissionID string) ([]models.Interview, error)
	ListUpcoming(ctx context.Context, actor Actor) ([]models.Interview, error)
	Update(ctx context.Context, actor Actor, iv *models.Interview) (*models.Interview, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type interviewService struct {
	interviews  pgrepo.InterviewRepository
	submissions pgrepo.SubmissionRepository
	clock       func() time.Time
}

func NewInterviewService(interviews pgrepo.InterviewRepository, submissions pgrepo.SubmissionRepository) InterviewService {
	return &interviewService{
		interviews:  interviews,
		submissions: submissions,
		clock:       time.Now,
	}
}

func validInterviewType(t models.InterviewType) bool {
	switch t {
	case models.InterviewPhone, models.InterviewVideo, models.InterviewOnsite:
		return true
	}
	return false
}

func validRound(r models.InterviewRound) bool {
	switch r {
	case models.RoundScreening, models.RoundTechnical, models.RoundManager, models.RoundFinal, models.RoundHR:
		return true
	}
	return false
}

func (s *interviewService) Create(ctx context.Context, actor Actor, iv *models.Interview) (*models.Interview, error) {
	const op = "InterviewService.Create"

	if iv == nil || iv.SubmissionID == "" || iv.InterviewDate.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "submission_id and interview_date are required", nil)
	}
	if !validInterviewType(iv.InterviewType) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interview_type must be phone, video or onsite", nil)
	}
	if !validRound(iv.RoundType) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid round_type", nil)
	}
	if iv.Rating != nil && (*iv.Rating < 1 || *iv.Rating > 5) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "rating must be between 1 and 5", nil)
	}

	sub, err := s.submissions.GetByID(ctx, iv.SubmissionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get submission", err)
	}
	if !actor.CanTouch(sub.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}

	now := s.clock().UTC()
	if iv.Status == "" {
		iv.Status = models.InterviewScheduled
	}
	if iv.Outcome == "" {
		iv.Outcome = models.OutcomePending
	}
	iv.ID = uuid.NewString()
	iv.CreatedBy = actor.UserID
	iv.CreatedAt = now
	iv.UpdatedAt = now
	iv.Submission = nil

	if err := s.interviews.Create(ctx, iv); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create interview", err)
	}

	// Scheduling an interview always moves the submission to
	// interview_scheduled, whatever state it was in.
	if err := s.submissions.SetStatus(ctx, iv.SubmissionID, models.SubmissionInterviewScheduled, now); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update submission status", err)
	}

	return iv, nil
}

func (s *interviewService) Get(ctx context.Context, actor Actor, id string) (*models.Interview, error) {
	const op = "InterviewService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}
	if !actor.CanTouch(iv.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return iv, nil
}

func (s *interviewService) ListBySubmission(ctx context.Context, actor Actor, submissionID string) ([]models.Interview, error) {
	const op = "InterviewService.ListBySubmission"

	if submissionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "submission_id is required", nil)
	}
	sub, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get submission", err)
	}
	if !actor.CanTouch(sub.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	out, err := s.interviews.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return out, nil
}

func (s *interviewService) ListUpcoming(ctx context.Context, actor Actor) ([]models.Interview, error) {
	const op = "InterviewService.ListUpcoming"

	out, err := s.interviews.ListUpcoming(ctx, actor.ScopeOwner())
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return out, nil
}

func (s *interviewService) Update(ctx context.Context, actor Actor, iv *models.Interview) (*models.Interview, error) {
	const op = "InterviewService.Update"

	if iv == nil || iv.ID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if iv.Rating != nil && (*iv.Rating < 1 || *iv.Rating > 5) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "rating must be between 1 and 5", nil)
	}
	if !actor.CanTouch(iv.CreatedBy) {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}

	iv.UpdatedAt = s.clock().UTC()
	if err := s.interviews.Update(ctx, iv); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update interview", err)
	}
	return iv, nil
}

func (s *interviewService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "InterviewService.Delete"

	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.interviews.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete interview", err)
	}
	return nil
}
