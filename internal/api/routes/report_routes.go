package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type ReportRoutes struct {
	handler   *handlers.ReportHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewReportRoutes(handler *handlers.ReportHandler, jwtSecret string, sessions *auth.SessionStore) *ReportRoutes {
	return &ReportRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.Engine) {
	reports := router.Group("/api/reports")
	reports.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	reports.GET("/company", r.handler.Company)
	reports.GET("/me", r.handler.Mine)
}
