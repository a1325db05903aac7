package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

type MarketplaceRoutes struct {
	handler   *handlers.MarketplaceHandler
	jwtSecret string
	sessions  *auth.SessionStore
}

func NewMarketplaceRoutes(handler *handlers.MarketplaceHandler, jwtSecret string, sessions *auth.SessionStore) *MarketplaceRoutes {
	return &MarketplaceRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

func (r *MarketplaceRoutes) RegisterRoutes(router *gin.Engine) {
	marketplace := router.Group("/api/marketplace")
	marketplace.Use(middleware.NewAuthMiddleware(r.jwtSecret, r.sessions))

	marketplace.GET("", r.handler.Browse)
	marketplace.GET("/:id", r.handler.Get)

	// Curation is an admin concern.
	marketplace.POST("", middleware.RequireRole("admin"), r.handler.Create)
	marketplace.DELETE("/:id", middleware.RequireRole("admin"), r.handler.Delete)
}
