package controllers

import (
	"net/http"
	"time"

	"github.com/georgesofianosgr/care-track/services"
	"github.com/georgesofianosgr/care-track/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

// refDate reads the ?date= query param, defaulting to today.
func refDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.DefaultQuery("date", utils.FormatDate(time.Now()))
	ref, err := utils.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return ref, true
}

// Weekly reports completion ratios for the week containing ?date=.
func (h *StatsController) Weekly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ref, ok := refDate(c)
	if !ok {
		return
	}

	report, err := h.Svc.Weekly(c.Request.Context(), userID, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Monthly reports completion ratios for the month containing ?date=.
func (h *StatsController) Monthly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ref, ok := refDate(c)
	if !ok {
		return
	}

	report, err := h.Svc.Monthly(c.Request.Context(), userID, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
