package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type ImpactRoutes struct {
	handler   *handlers.ImpactHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewImpactRoutes(handler *handlers.ImpactHandler, jwtSecret string, sessions *auth.SessionStore) *ImpactRoutes {
	return &ImpactRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *ImpactRoutes) RegisterRoutes(router *gin.Engine) {
	form := router.Group("/api/impact/form")
	form.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	form.POST("/category", r.handler.SelectCategory)
	form.POST("/funds/kind", r.handler.SetFundsKind)
	form.POST("/time/kind", r.handler.SetTimeKind)
	form.POST("/blood/kind", r.handler.SetBloodKind)
	form.PUT("/funds", r.handler.EditFunds)
	form.PUT("/time", r.handler.EditTime)
	form.PUT("/blood", r.handler.EditBlood)
	form.PUT("/items", r.handler.EditItems)
	form.POST("/proof", r.handler.AttachProof)
	form.GET("/causes", r.handler.Causes)
	form.POST("/submit", r.handler.Submit)
	form.DELETE("", r.handler.Reset)
}
