package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type VendorHandler struct {
	svc services.VendorService
}

func NewVendorHandler(svc services.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

type createVendorRequest struct {
	Name        string   `json:"name"`
	ContactName string   `json:"contact_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Specialties []string `json:"specialties"`
	Status      string   `json:"status"`
	RecruiterID string   `json:"recruiter_id"`
}

func (h *VendorHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "VendorHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), actor, &models.Vendor{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Specialties: req.Specialties,
		Status:      models.VendorStatus(req.Status),
		RecruiterID: req.RecruiterID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *VendorHandler) Get(c *gin.Context) {
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

func (h *VendorHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	out, err := h.svc.List(c.Request.Context(), actor,
		models.VendorStatus(c.Query("status")), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateVendorRequest struct {
	Name        *string   `json:"name,omitempty"`
	ContactName *string   `json:"contact_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	Status      *string   `json:"status,omitempty"`
	RecruiterID *string   `json:"recruiter_id,omitempty"`
}

func (h *VendorHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req updateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "VendorHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ContactName != nil {
		existing.ContactName = *req.ContactName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		existing.PhoneNumber = *req.PhoneNumber
	}
	if req.Specialties != nil {
		existing.Specialties = *req.Specialties
	}
	if req.Status != nil {
		existing.Status = models.VendorStatus(*req.Status)
	}
	if req.RecruiterID != nil {
		existing.RecruiterID = *req.RecruiterID
	}

	out, err := h.svc.Update(c.Request.Context(), actor, existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) Delete(c *gin.Context) {
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
