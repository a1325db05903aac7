package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/marketplace"
)

type MarketplaceHandler struct {
	opportunities marketplace.Service
	logger        *zap.Logger
}

func NewMarketplaceHandler(opportunities marketplace.Service, logger *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{opportunities: opportunities, logger: logger}
}

func (h *MarketplaceHandler) Create(c *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.opportunities.CreateOpportunity(c.Request.Context(), marketplace.CreateOpportunityInput{
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		Description:  req.Description,
		Category:     req.Category,
		Points:       req.Points,
		Date:         req.Date,
		URL:          req.URL,
	})
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity input"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create opportunity"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *MarketplaceHandler) Browse(c *gin.Context) {
	var query dto.BrowseOpportunitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := marketplace.OpportunityFilter{}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if query.Location != "" {
		filter.Location = &query.Location
	}

	opportunities, err := h.opportunities.Browse(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to browse marketplace", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to browse marketplace"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}

func (h *MarketplaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}

	o, err := h.opportunities.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *MarketplaceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}

	if err := h.opportunities.DeleteOpportunity(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity deleted"})
}
