package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusdesk/planner-api/api/swagger"
	"github.com/campusdesk/planner-api/internal/handler"
	"github.com/campusdesk/planner-api/internal/middleware"
	"github.com/campusdesk/planner-api/internal/models"
	"github.com/campusdesk/planner-api/internal/repository"
	"github.com/campusdesk/planner-api/internal/service"
	"github.com/campusdesk/planner-api/pkg/cache"
	"github.com/campusdesk/planner-api/pkg/config"
	"github.com/campusdesk/planner-api/pkg/database"
	"github.com/campusdesk/planner-api/pkg/logger"
	corsmiddleware "github.com/campusdesk/planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusdesk/planner-api/pkg/middleware/requestid"
)

// @title CampusDesk Planner API
// @version 1.0.0
// @description Course schedule candidate generation and ranking
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if client, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Sugar().Warnw("redis unavailable, plan caching disabled", "error", err)
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	termRepo := repository.NewTermRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogSvc := service.NewCatalogService(termRepo, courseRepo, sectionRepo, logr)
	plannerSvc := service.NewPlannerService(courseRepo, sectionRepo, studentRepo, termRepo, cacheRepo, metricsSvc, nil, logr, service.PlannerConfig{
		MaxSections: cfg.Planner.MaxSections,
		TopN:        cfg.Planner.TopN,
		CacheTTL:    cfg.Planner.CacheTTL,
	})
	exportSvc := service.NewExportService(nil, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	plannerHandler := handler.NewPlannerHandler(plannerSvc, cfg.Planner.Enabled)
	exportHandler := handler.NewExportHandler(exportSvc, cfg.Export.Enabled)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	catalog := api.Group("", middleware.JWT(authSvc))
	catalog.GET("/terms", catalogHandler.Terms)
	catalog.GET("/terms/:id/courses", catalogHandler.Courses)
	catalog.GET("/terms/:id/sections", catalogHandler.Sections)

	plans := api.Group("/plans", middleware.JWT(authSvc))
	plans.POST("", plannerHandler.Plan)
	plans.POST("/export", exportHandler.Export)
	plans.DELETE("/cache", middleware.RequireRoles(models.RoleAdmin, models.RoleAdvisor), plannerHandler.InvalidateCache)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
