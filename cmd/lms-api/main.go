package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/akademika/lms-api/api/swagger"
	"github.com/akademika/lms-api/internal/handler"
	"github.com/akademika/lms-api/internal/middleware"
	"github.com/akademika/lms-api/internal/models"
	"github.com/akademika/lms-api/internal/repository"
	"github.com/akademika/lms-api/internal/service"
	"github.com/akademika/lms-api/pkg/cache"
	"github.com/akademika/lms-api/pkg/config"
	"github.com/akademika/lms-api/pkg/database"
	"github.com/akademika/lms-api/pkg/logger"
	corsmiddleware "github.com/akademika/lms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/akademika/lms-api/pkg/middleware/requestid"
)

// @title Akademika LMS API
// @version 1.0.0
// @description Academic analytics and dashboard API
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsService := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Dashboard.CacheTTL, logr)

	gradeRepo := repository.NewGradeRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	authService := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "lms-api",
	})

	dashboardService := service.NewDashboardService(service.DashboardServiceParams{
		Grades:      gradeRepo,
		Enrollments: enrollmentRepo,
		Courses:     courseRepo,
		Users:       userRepo,
		Faculties:   facultyRepo,
		Assignments: assignmentRepo,
		Cache:       cacheService,
		Metrics:     metricsService,
		Logger:      logr,
		Config: service.DashboardServiceConfig{
			CacheTTL:       cfg.Dashboard.CacheTTL,
			UpcomingWindow: cfg.Dashboard.UpcomingWindow,
			RecentGradeMax: cfg.Dashboard.RecentGradeMax,
		},
	})

	analyticsService := service.NewAnalyticsService(courseRepo, gradeRepo, enrollmentRepo,
		cacheService, metricsService, logr, service.AnalyticsServiceConfig{CacheTTL: cfg.Analytics.CacheTTL})

	gradeService := service.NewGradeService(gradeRepo, cacheService, validate, logr)

	exportService := service.NewExportService(analyticsService, gradeRepo, enrollmentRepo, courseRepo,
		logr, cfg.Reports.MaxExportRows)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	gradeHandler := handler.NewGradeHandler(gradeService)
	reportHandler := handler.NewReportHandler(exportService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsService.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	protected := api.Group("")
	protected.Use(middleware.JWT(authService))

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/student", middleware.RequireRoles(models.RoleStudent), dashboardHandler.Student)
	dashboard.GET("/faculty", middleware.RequireRoles(models.RoleFaculty), dashboardHandler.Faculty)
	dashboard.GET("/prodi", middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty), dashboardHandler.Prodi)
	dashboard.GET("/management", middleware.RequireRoles(models.RoleAdmin), dashboardHandler.Management)

	analytics := protected.Group("/analytics")
	analytics.GET("/grade-distribution", analyticsHandler.GradeDistribution)
	analytics.GET("/enrollment-trends", analyticsHandler.EnrollmentTrends)
	analytics.GET("/faculty-enrollment", analyticsHandler.FacultyEnrollment)

	grades := protected.Group("/grades")
	grades.GET("", gradeHandler.List)
	grades.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty), gradeHandler.Upsert)

	reports := protected.Group("/reports")
	reports.GET("/grade-distribution", middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty), reportHandler.GradeDistribution)
	reports.GET("/transcript", reportHandler.Transcript)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
