package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type DashboardRoutes struct {
	handler   *handlers.DashboardHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewDashboardRoutes(handler *handlers.DashboardHandler, jwtSecret string, sessions *auth.SessionStore) *DashboardRoutes {
	return &DashboardRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine) {
	dashboards := router.Group("/api/dashboards")
	dashboards.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	dashboards.GET("", r.handler.List)
	dashboards.POST("", r.handler.Create)
	dashboards.GET("/default", r.handler.GetDefault)
	dashboards.GET("/:id", r.handler.Get)
	dashboards.GET("/:id/widgets", r.handler.Widgets)
	dashboards.POST("/:id/widgets", r.handler.AddWidget)
	dashboards.GET("/:id/render", r.handler.Render)
	dashboards.GET("/:id/layout", r.handler.Layout)

	widgets := router.Group("/api/widgets")
	widgets.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))
	widgets.GET("", r.handler.ListCatalog)
	widgets.POST("", r.handler.CreateWidget)
}
