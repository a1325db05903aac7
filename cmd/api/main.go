package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/handlers"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/routes"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/charity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/impact"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/marketplace"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/report"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/team"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/user"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/config"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/logger"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/security/auth"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	defer log.Sync()

	formLogger := logrus.New()
	formLogger.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		formLogger.SetLevel(lvl)
	}

	sessions := auth.NewSessionStore(cfg.Auth.SessionFile)

	// Domain wiring. Users award points and feed the leaderboards;
	// activities feed the dashboard aggregates.
	userRepo := user.NewRepository()
	users := user.NewService(userRepo, log.Logger)

	activityRepo := activity.NewRepository()
	activities := activity.NewService(activityRepo, users, cfg.Dashboard.MonthlyWindow, log.Logger)

	registryClient := charity.NewClient(cfg.Registry.BaseURL, cfg.Registry.Timeout, cfg.Registry.PageSize, log.Logger)

	impactSvc := impact.NewService(impact.ServiceConfig{
		Activities: activities,
		Registry:   registryClient,
		Policy: impact.AttachmentPolicy{
			MaxSizeBytes:      cfg.Uploads.MaxSizeBytes,
			AllowedExtensions: cfg.Uploads.AllowedExtensions,
		},
		Logger: formLogger,
	})

	catalog := dashboard.NewCatalog()
	registry := dashboard.NewRegistry()
	dashboards := dashboard.NewService(catalog, registry, activityRepo, users, log.Logger)

	listingsClient := marketplace.NewListingsClient(cfg.Listings.BaseURL, cfg.Listings.Timeout, cfg.Listings.FreshWindow, log.Logger)
	opportunities := marketplace.NewService(marketplace.NewRepository(), listingsClient, log.Logger)

	teams := team.NewService(team.NewRepository(), log.Logger)
	reports := report.NewService(activities, users, log.Logger)

	// Every submitted entry refreshes the built-in widgets.
	impactSvc.RegisterListener(func(entry impact.Entry, logged *activity.Activity) {
		if err := dashboards.RefreshCatalog(context.Background()); err != nil {
			log.Warn("catalog refresh after submission failed", zap.Error(err))
		}
	})

	if err := seedDemoData(context.Background(), users, activities, opportunities, teams, dashboards, registry, log); err != nil {
		log.Fatal("failed to seed demo data", zap.Error(err))
	}

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		// Wildcard origins cannot carry credentials.
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	routes.SetupHealthRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(users, sessions, cfg.Auth, log.Logger)
	routes.NewAuthRoutes(authHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	activityHandler := handlers.NewActivityHandler(activities, log.Logger)
	routes.NewActivityRoutes(activityHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	dashboardHandler := handlers.NewDashboardHandler(dashboards, cfg.Dashboard.MetricRowCap, log.Logger)
	routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	impactHandler := handlers.NewImpactHandler(impactSvc, log.Logger)
	routes.NewImpactRoutes(impactHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	marketplaceHandler := handlers.NewMarketplaceHandler(opportunities, log.Logger)
	routes.NewMarketplaceRoutes(marketplaceHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	teamHandler := handlers.NewTeamHandler(teams, log.Logger)
	routes.NewTeamRoutes(teamHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	reportHandler := handlers.NewReportHandler(reports, log.Logger)
	routes.NewReportRoutes(reportHandler, cfg.Auth.JWTSecret, sessions).RegisterRoutes(router)

	// Periodic session cleanup keeps the persisted mirror small.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := sessions.CleanExpired(); removed > 0 {
					log.Info("cleaned expired sessions", zap.Int("removed", removed))
				}
			case <-cleanupDone:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")
	close(cleanupDone)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
