package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/user"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/config"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type AuthHandler struct {
	users    user.Service
	sessions *auth.SessionStore
	authCfg  config.AuthConfig
	logger   *zap.Logger
}

func NewAuthHandler(users user.Service, sessions *auth.SessionStore, authCfg config.AuthConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		authCfg:  authCfg,
		logger:   logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.Register(c.Request.Context(), user.RegisterInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Organization: req.Organization,
		AvatarURL:    req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		case errors.Is(err, user.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration input"})
		default:
			h.logger.Error("registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}
		return
	}

	resp, err := h.issueSession(u)
	if err != nil {
		h.logger.Error("failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	resp, err := h.issueSession(u)
	if err != nil {
		h.logger.Error("failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if exists {
		h.sessions.InvalidateSession(token.(string))
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), userID, user.UpdateProfileInput{
		Name:         req.Name,
		Organization: req.Organization,
		AvatarURL:    req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func (h *AuthHandler) issueSession(u *user.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(u.ID, u.Email, string(u.Role),
		h.authCfg.JWTSecret, h.authCfg.JWTIssuer, h.authCfg.JWTExpiryHours)
	if err != nil {
		return nil, err
	}
	h.sessions.CreateSession(u.ID, u.Email, u.Name, string(u.Role), token,
		time.Duration(h.authCfg.JWTExpiryHours)*time.Hour)

	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(u)}, nil
}
