package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
)

type DashboardHandler struct {
	dashboards   dashboard.Service
	metricRowCap int
	logger       *zap.Logger
}

func NewDashboardHandler(dashboards dashboard.Service, metricRowCap int, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, metricRowCap: metricRowCap, logger: logger}
}

func (h *DashboardHandler) Create(c *gin.Context) {
	var req dto.CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.dashboards.CreateDashboard(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dashboard"})
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DashboardHandler) List(c *gin.Context) {
	dashboards, err := h.dashboards.ListDashboards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dashboards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboards": dashboards})
}

func (h *DashboardHandler) GetDefault(c *gin.Context) {
	d, err := h.dashboards.GetDefaultDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dashboard available"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard id"})
		return
	}

	d, err := h.dashboards.GetDashboard(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) AddWidget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard id"})
		return
	}

	var req dto.AddWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dashboards.AddWidgetToDashboard(c.Request.Context(), id, req.WidgetID); err != nil {
		switch {
		case errors.Is(err, dashboard.ErrDashboardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		case errors.Is(err, dashboard.ErrWidgetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "widget not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add widget"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "widget added"})
}

func (h *DashboardHandler) Widgets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard id"})
		return
	}

	widgets, err := h.dashboards.WidgetsFor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

func (h *DashboardHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard id"})
		return
	}

	views, err := h.dashboards.RenderDashboard(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

func (h *DashboardHandler) Layout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard id"})
		return
	}

	layout, err := h.dashboards.LayoutFor(c.Request.Context(), id, h.metricRowCap)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		return
	}
	c.JSON(http.StatusOK, layout)
}

func (h *DashboardHandler) ListCatalog(c *gin.Context) {
	widgets, err := h.dashboards.ListWidgets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list widgets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

func (h *DashboardHandler) CreateWidget(c *gin.Context) {
	var req dto.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.dashboards.CreateWidget(c.Request.Context(),
		dashboard.WidgetType(req.Type), req.Title, req.SeedFromData)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidWidgetType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown widget type"})
			return
		}
		h.logger.Error("failed to create widget", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create widget"})
		return
	}
	c.JSON(http.StatusCreated, w)
}
