package controllers

import (
	"errors"
	"net/http"

	"github.com/georgesofianosgr/care-track/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Svc        *services.EntryService
	Activities *services.ActivityService
}

func NewEntryController(svc *services.EntryService, activities *services.ActivityService) *EntryController {
	return &EntryController{Svc: svc, Activities: activities}
}

// List returns the user's entries for ?date= or for ?start=&end= (inclusive).
func (h *EntryController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var (
		entries interface{}
		err     error
	)
	switch {
	case c.Query("date") != "":
		entries, err = h.Svc.ListByDate(c.Request.Context(), userID, c.Query("date"))
	case c.Query("start") != "" && c.Query("end") != "":
		entries, err = h.Svc.ListByRange(c.Request.Context(), userID, c.Query("start"), c.Query("end"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' or 'start'/'end' query params"})
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Toggle upserts one day's completion state for one of the user's activities.
func (h *EntryController) Toggle(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		ActivityID string `json:"activityId"`
		Date       string `json:"date"`
		Completed  bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.Activities.Get(c.Request.Context(), req.ActivityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if activity == nil || activity.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}

	entry, err := h.Svc.ToggleCompletion(c.Request.Context(), req.ActivityID, userID, req.Date, req.Completed)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) || errors.Is(err, services.ErrIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}
