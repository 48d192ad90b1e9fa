package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type ConsultantHandler struct {
	svc     services.ConsultantService
	resumes services.ResumeService
}

func NewConsultantHandler(svc services.ConsultantService, resumes services.ResumeService) *ConsultantHandler {
	return &ConsultantHandler{svc: svc, resumes: resumes}
}

type createConsultantRequest struct {
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Status      string   `json:"status"`
}

func (h *ConsultantHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req createConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConsultantHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), actor, &models.Consultant{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Status:      models.ConsultantStatus(req.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *ConsultantHandler) Get(c *gin.Context) {
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

func (h *ConsultantHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	out, err := h.svc.List(c.Request.Context(), actor,
		models.ConsultantStatus(c.Query("status")), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateConsultantRequest struct {
	FullName    *string   `json:"full_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Experience  *string   `json:"experience,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

func (h *ConsultantHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req updateConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConsultantHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		existing.PhoneNumber = *req.PhoneNumber
	}
	if req.Skills != nil {
		existing.Skills = *req.Skills
	}
	if req.Experience != nil {
		existing.Experience = *req.Experience
	}
	if req.Status != nil {
		existing.Status = models.ConsultantStatus(*req.Status)
	}

	out, err := h.svc.Update(c.Request.Context(), actor, existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ConsultantHandler) Delete(c *gin.Context) {
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

func (h *ConsultantHandler) UploadResume(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConsultantHandler.UploadResume", "missing multipart field 'file'", err))
		return
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConsultantHandler.UploadResume", "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > 10<<20 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConsultantHandler.UploadResume", "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ConsultantHandler.UploadResume", "failed to open upload", err))
		return
	}
	defer file.Close()

	row, err := h.resumes.Upload(c.Request.Context(), actor, c.Param("id"), fh.Filename, int(fh.Size), "application/pdf", file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ConsultantHandler) GetResume(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	row, err := h.resumes.Latest(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
