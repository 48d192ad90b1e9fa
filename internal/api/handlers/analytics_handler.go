package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
)

type AnalyticsHandler struct {
	svc services.AnalyticsService
}

func NewAnalyticsHandler(svc services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.DashboardStats(c.Request.Context(), actor, r)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Consultants(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, g, err := rangeAndGranularity(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.ConsultantAnalytics(c.Request.Context(), actor, r, g)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Recruiters(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, g, err := rangeAndGranularity(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.RecruiterAnalytics(c.Request.Context(), actor, r, g)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Pipeline(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, g, err := rangeAndGranularity(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.PipelineAnalytics(c.Request.Context(), actor, r, g)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Vendors(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.VendorAnalytics(c.Request.Context(), actor, r)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) FollowUps(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	overdueOnly := c.Query("overdue") == "true"
	out, err := h.svc.FollowUpReminders(c.Request.Context(), actor, overdueOnly)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func rangeAndGranularity(c *gin.Context) (services.DateRange, services.Granularity, error) {
	r, err := parseDateRange(c)
	if err != nil {
		return r, services.GranularityNone, err
	}
	g, err := services.ParseGranularity(c.Query("granularity"))
	if err != nil {
		return r, g, err
	}
	return r, g, nil
}
