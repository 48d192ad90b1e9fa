package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireActor(c *gin.Context) (services.Actor, bool) {
	var actor services.Actor
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok {
			actor.UserID = s
		}
	}
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			actor.Role = models.UserRole(s)
		}
	}
	if actor.UserID == "" {
		writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
		return actor, false
	}
	return actor, true
}

// parseDateRange reads date_from/date_to (2006-01-02) query params into a
// half-open range; date_to is inclusive of its whole day.
func parseDateRange(c *gin.Context) (services.DateRange, error) {
	var r services.DateRange
	if v := c.Query("date_from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return r, utils.E(utils.CodeInvalidArgument, "parseDateRange", "date_from must be YYYY-MM-DD", err)
		}
		r.From = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return r, utils.E(utils.CodeInvalidArgument, "parseDateRange", "date_to must be YYYY-MM-DD", err)
		}
		end := t.AddDate(0, 0, 1)
		r.To = &end
	}
	return r, nil
}
