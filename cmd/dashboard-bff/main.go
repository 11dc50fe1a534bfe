package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/qlhs-edu/dashboard-bff/api/swagger"
	"github.com/qlhs-edu/dashboard-bff/internal/handler"
	"github.com/qlhs-edu/dashboard-bff/internal/middleware"
	"github.com/qlhs-edu/dashboard-bff/internal/repository"
	"github.com/qlhs-edu/dashboard-bff/internal/service"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
	"github.com/qlhs-edu/dashboard-bff/pkg/cache"
	"github.com/qlhs-edu/dashboard-bff/pkg/config"
	"github.com/qlhs-edu/dashboard-bff/pkg/logger"
	corsmiddleware "github.com/qlhs-edu/dashboard-bff/pkg/middleware/cors"
	reqidmiddleware "github.com/qlhs-edu/dashboard-bff/pkg/middleware/requestid"
)

// @title School Dashboard BFF
// @version 1.0.0
// @description Gateway shaping the school backend's attendance data for the teacher dashboard
// @BasePath /api/v1
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

	metricsSvc := service.NewMetricsService()

	// Redis also backs language preferences, so it is dialed even when
	// response caching is off.
	var cacheRepo service.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching and stored preferences disabled", "error", err)
	} else {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.ListTTL, logr, cfg.Cache.Enabled)

	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, logr, metricsSvc)

	authSvc := service.NewAuthService(service.AuthConfig{TokenSecret: cfg.Auth.TokenSecret}, logr)
	prefSvc := service.NewPreferenceService(cacheRepo, cfg.Locale.Default, logr)
	attendanceSvc := service.NewAttendanceService(client, cacheSvc, cfg.Cache.ListTTL, logr)
	studentSvc := service.NewStudentService(client, client, client, cacheSvc, cfg.Cache.ListTTL, logr)
	scheduleSvc := service.NewScheduleService(client, cacheSvc, cfg.Cache.ListTTL, logr)
	subjectSvc := service.NewSubjectService(client, cacheSvc, cfg.Cache.ListTTL, logr)
	classSvc := service.NewClassService(client, cacheSvc, cfg.Cache.ListTTL, logr)
	dashboardSvc := service.NewDashboardService(attendanceSvc, scheduleSvc, subjectSvc, client, cacheSvc, cfg.Cache.DashboardTTL, logr)
	exportSvc := service.NewExportService(attendanceSvc, nil, nil, logr)

	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc, exportSvc, prefSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, prefSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	classHandler := handler.NewClassHandler(classSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, prefSvc)
	preferenceHandler := handler.NewPreferenceHandler(prefSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authSvc))
	{
		api.GET("/attendance", attendanceHandler.List)
		api.GET("/attendance/export", attendanceHandler.Export)
		api.GET("/students", studentHandler.List)
		api.GET("/schedule", scheduleHandler.Weekly)
		api.GET("/subjects", subjectHandler.List)
		api.GET("/subjects/:subjectId/students", studentHandler.ListBySubject)
		api.GET("/classes", classHandler.List)
		api.GET("/classes/:classId/students", studentHandler.ListByClass)
		api.GET("/dashboard", dashboardHandler.Overview)
		api.GET("/preferences/language", preferenceHandler.GetLanguage)
		api.PUT("/preferences/language", preferenceHandler.SetLanguage)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
