package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/report"
)

type ReportHandler struct {
	reports report.Service
	logger  *zap.Logger
}

func NewReportHandler(reports report.Service, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// Company generates the company-wide impact report.
func (h *ReportHandler) Company(c *gin.Context) {
	r, err := h.reports.Generate(c.Request.Context(), nil)
	if err != nil {
		h.logger.Error("failed to generate report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// Mine generates a report scoped to the authenticated user.
func (h *ReportHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	r, err := h.reports.Generate(c.Request.Context(), &userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	c.JSON(http.StatusOK, r)
}
