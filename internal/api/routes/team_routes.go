package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type TeamRoutes struct {
	handler   *handlers.TeamHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewTeamRoutes(handler *handlers.TeamHandler, jwtSecret string, sessions *auth.SessionStore) *TeamRoutes {
	return &TeamRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *TeamRoutes) RegisterRoutes(router *gin.Engine) {
	teams := router.Group("/api/teams")
	teams.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	teams.GET("", r.handler.List)
	teams.POST("", r.handler.Create)
	teams.GET("/:id", r.handler.Get)
	teams.POST("/:id/join", r.handler.Join)
	teams.POST("/:id/leave", r.handler.Leave)
}
