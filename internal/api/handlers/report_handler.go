package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/reports"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type ReportHandler struct {
	svc *reports.Service
}

func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type triggerReportRequest struct {
	Period string `json:"period"`
}

// Trigger sends a report immediately, outside the schedule. Admin only.
func (h *ReportHandler) Trigger(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	var req triggerReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ReportHandler.Trigger", "invalid request body", err))
		return
	}
	p, err := reports.ParsePeriod(req.Period)
	if err != nil {
		writeError(c, err)
		return
	}

	run, err := h.svc.Run(c.Request.Context(), p, true)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *ReportHandler) Runs(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	limit := int64(0)
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ReportHandler.Runs", "limit must be a positive integer", err))
			return
		}
		limit = n
	}
	out, err := h.svc.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
