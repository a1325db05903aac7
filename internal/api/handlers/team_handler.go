package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/team"
)

type TeamHandler struct {
	teams  team.Service
	logger *zap.Logger
}

func NewTeamHandler(teams team.Service, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, logger: logger}
}

func (h *TeamHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.teams.CreateTeam(c.Request.Context(), team.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		LeadID:      userID,
	})
	if err != nil {
		if errors.Is(err, team.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team input"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	t, err := h.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TeamHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	t, err := h.teams.Join(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		case errors.Is(err, team.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": "already a member"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join team"})
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TeamHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	t, err := h.teams.Leave(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		case errors.Is(err, team.ErrNotMember):
			c.JSON(http.StatusConflict, gin.H{"error": "not a member"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave team"})
		}
		return
	}
	c.JSON(http.StatusOK, t)
}
