package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type ActivityRoutes struct {
	handler   *handlers.ActivityHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewActivityRoutes(handler *handlers.ActivityHandler, jwtSecret string, sessions *auth.SessionStore) *ActivityRoutes {
	return &ActivityRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *ActivityRoutes) RegisterRoutes(router *gin.Engine) {
	activities := router.Group("/api/activities")
	activities.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	activities.GET("", r.handler.List)
	activities.POST("", r.handler.Create)
	activities.GET("/summary", r.handler.Summary)
	activities.GET("/:id", r.handler.Get)
	activities.PUT("/:id", r.handler.Update)
	activities.DELETE("/:id", r.handler.Delete)
}
