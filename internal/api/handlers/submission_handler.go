package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type SubmissionHandler struct {
	svc services.SubmissionService
}

func NewSubmissionHandler(svc services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

type createSubmissionRequest struct {
	ConsultantID      string     `json:"consultant_id"`
	VendorID          string     `json:"vendor_id"`
	PositionTitle     string     `json:"position_title"`
	ClientName        string     `json:"client_name"`
	EndClientName     string     `json:"end_client_name"`
	Status            string     `json:"status"`
	SubmissionDate    *time.Time `json:"submission_date,omitempty"`
	LastVendorContact *time.Time `json:"last_vendor_contact,omitempty"`
	NextFollowUpDate  *time.Time `json:"next_follow_up_date,omitempty"`
	Notes             string     `json:"notes"`
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SubmissionHandler.Create", "invalid request body", err))
		return
	}

	sub := &models.Submission{
		ConsultantID:      req.ConsultantID,
		VendorID:          req.VendorID,
		PositionTitle:     req.PositionTitle,
		ClientName:        req.ClientName,
		EndClientName:     req.EndClientName,
		Status:            models.SubmissionStatus(req.Status),
		LastVendorContact: req.LastVendorContact,
		NextFollowUpDate:  req.NextFollowUpDate,
		Notes:             req.Notes,
	}
	if req.SubmissionDate != nil {
		sub.SubmissionDate = *req.SubmissionDate
	}

	out, err := h.svc.Create(c.Request.Context(), actor, sub)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
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

func (h *SubmissionHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.List(c.Request.Context(), actor, pgrepo.SubmissionFilter{
		ConsultantID: c.Query("consultant_id"),
		VendorID:     c.Query("vendor_id"),
		Status:       models.SubmissionStatus(c.Query("status")),
		From:         r.From,
		To:           r.To,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Pointer fields so a partial update can clear nullable columns: sending
// null for next_follow_up_date is distinct from omitting it.
type updateSubmissionRequest struct {
	PositionTitle     *string    `json:"position_title,omitempty"`
	ClientName        *string    `json:"client_name,omitempty"`
	EndClientName     *string    `json:"end_client_name,omitempty"`
	Status            *string    `json:"status,omitempty"`
	SubmissionDate    *time.Time `json:"submission_date,omitempty"`
	LastVendorContact *time.Time `json:"last_vendor_contact,omitempty"`
	NextFollowUpDate  *time.Time `json:"next_follow_up_date,omitempty"`
	ClearNextFollowUp bool       `json:"clear_next_follow_up,omitempty"`
	VendorFeedback    *string    `json:"vendor_feedback,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req updateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SubmissionHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	now := time.Now().UTC()
	if req.PositionTitle != nil {
		existing.PositionTitle = *req.PositionTitle
	}
	if req.ClientName != nil {
		existing.ClientName = *req.ClientName
	}
	if req.EndClientName != nil {
		existing.EndClientName = *req.EndClientName
	}
	if req.Status != nil {
		existing.Status = models.SubmissionStatus(*req.Status)
	}
	if req.SubmissionDate != nil {
		existing.SubmissionDate = *req.SubmissionDate
	}
	if req.LastVendorContact != nil {
		existing.LastVendorContact = req.LastVendorContact
	}
	if req.NextFollowUpDate != nil {
		existing.NextFollowUpDate = req.NextFollowUpDate
	}
	if req.ClearNextFollowUp {
		existing.NextFollowUpDate = nil
	}
	if req.VendorFeedback != nil {
		existing.VendorFeedback = *req.VendorFeedback
		existing.VendorFeedbackAt = &now
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
		existing.NotesAt = &now
	}

	out, err := h.svc.Update(c.Request.Context(), actor, existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
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
