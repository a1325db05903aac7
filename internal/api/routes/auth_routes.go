package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type AuthRoutes struct {
	handler   *handlers.AuthHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret string, sessions *auth.SessionStore) *AuthRoutes {
	return &AuthRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	public := router.Group("/api/auth")
	public.POST("/register", r.handler.Register)
	public.POST("/login", r.handler.Login)

	protected := router.Group("/api/auth")
	protected.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))
	protected.POST("/logout", r.handler.Logout)
	protected.GET("/me", r.handler.Me)
	protected.PUT("/me", r.handler.UpdateProfile)
}
