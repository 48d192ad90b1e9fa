package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type createInterviewRequest struct {
	SubmissionID  string     `json:"submission_id"`
	InterviewDate time.Time  `json:"interview_date"`
	InterviewType string     `json:"interview_type"`
	RoundType     string     `json:"round_type"`
	Status        string     `json:"status"`
	NextSteps     string     `json:"next_steps"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
}

func (h *InterviewHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req createInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), actor, &models.Interview{
		SubmissionID:  req.SubmissionID,
		InterviewDate: req.InterviewDate,
		InterviewType: models.InterviewType(req.InterviewType),
		RoundType:     models.InterviewRound(req.RoundType),
		Status:        models.InterviewStatus(req.Status),
		NextSteps:     req.NextSteps,
		FollowUpDate:  req.FollowUpDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InterviewHandler) ListBySubmission(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	out, err := h.svc.ListBySubmission(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InterviewHandler) ListUpcoming(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	out, err := h.svc.ListUpcoming(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateInterviewRequest struct {
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	InterviewType *string    `json:"interview_type,omitempty"`
	RoundType     *string    `json:"round_type,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	Rating        *int       `json:"rating,omitempty"`
	Outcome       *string    `json:"outcome,omitempty"`
	NextSteps     *string    `json:"next_steps,omitempty"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
}

func (h *InterviewHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req updateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if req.InterviewDate != nil {
		existing.InterviewDate = *req.InterviewDate
	}
	if req.InterviewType != nil {
		existing.InterviewType = models.InterviewType(*req.InterviewType)
	}
	if req.RoundType != nil {
		existing.RoundType = models.InterviewRound(*req.RoundType)
	}
	if req.Status != nil {
		existing.Status = models.InterviewStatus(*req.Status)
	}
	if req.Feedback != nil {
		existing.Feedback = *req.Feedback
	}
	if req.Rating != nil {
		existing.Rating = req.Rating
	}
	if req.Outcome != nil {
		existing.Outcome = models.InterviewOutcome(*req.Outcome)
	}
	if req.NextSteps != nil {
		existing.NextSteps = *req.NextSteps
	}
	if req.FollowUpDate != nil {
		existing.FollowUpDate = req.FollowUpDate
	}

	out, err := h.svc.Update(c.Request.Context(), actor, existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
