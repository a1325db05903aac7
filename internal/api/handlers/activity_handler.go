package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
)

type ActivityHandler struct {
	activities activity.Service
	logger     *zap.Logger
}

func NewActivityHandler(activities activity.Service, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, logger: logger}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.activities.LogActivity(c.Request.Context(), activity.CreateActivityInput{
		UserID:       userID,
		Type:         activity.Type(req.Type),
		Title:        req.Title,
		Description:  req.Description,
		Impact:       req.Impact,
		Date:         req.Date,
		Points:       req.Points,
		Hours:        req.Hours,
		AmountRaised: req.AmountRaised,
		Location:     req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrMeasureMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "measure does not match activity type"})
		case errors.Is(err, activity.ErrNegativePoints), errors.Is(err, activity.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to log activity", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log activity"})
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	a, err := h.activities.GetActivity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, activity.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get activity"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) List(c *gin.Context) {
	var query dto.ListActivitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := activity.ActivityFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Type != "" {
		t := activity.Type(query.Type)
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity type"})
			return
		}
		filter.Type = &t
	}
	if query.Mine {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		filter.UserID = &userID
	}

	activities, total, err := h.activities.ListActivities(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities, "total": total})
}

func (h *ActivityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.activities.UpdateActivity(c.Request.Context(), id, activity.UpdateActivityInput{
		Title:        req.Title,
		Description:  req.Description,
		Impact:       req.Impact,
		Date:         req.Date,
		Hours:        req.Hours,
		AmountRaised: req.AmountRaised,
	})
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		case errors.Is(err, activity.ErrMeasureMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "measure does not match activity type"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
		}
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	if err := h.activities.DeleteActivity(c.Request.Context(), id); err != nil {
		if errors.Is(err, activity.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

func (h *ActivityHandler) Summary(c *gin.Context) {
	var userID *uuid.UUID
	if c.Query("mine") == "true" {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		userID = &id
	}

	summary, err := h.activities.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
