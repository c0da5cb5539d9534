package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"syscall-optimizer-backend/internal/config"
	"syscall-optimizer-backend/internal/database"
	"syscall-optimizer-backend/internal/handler"
	"syscall-optimizer-backend/internal/llm"
	"syscall-optimizer-backend/internal/middleware"
	"syscall-optimizer-backend/internal/repository"
	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/logger"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	log := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	log.Info().Msg("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database schema")
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	qrTokenRepo := repository.NewQRTokenRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	healthRepo := repository.NewHealthRepo(db)

	// 5. Initialize services
	completionClient := llm.NewClient(cfg.Groq)
	var completer llm.Completer
	if completionClient.Enabled() {
		completer = completionClient
		log.Info().Str("model", cfg.Groq.Model).Msg("Completion service enabled")
	} else {
		log.Info().Msg("Completion service disabled, using rule-based recommendations")
	}

	sampleSource := service.NewSyntheticSource()
	optimizerService := service.NewOptimizerService(cfg.Optimizer, sampleSource, completer)
	qrTokenService := service.NewQRTokenService(qrTokenRepo, userRepo, activityRepo)
	authService := service.NewAuthService(userRepo, activityRepo, qrTokenService)
	activityService := service.NewActivityService(activityRepo, healthRepo)
	userService := service.NewUserService(userRepo, activityRepo)
	workerService := service.NewWorkerService(optimizerService, sampleSource, healthRepo, cfg.Optimizer)

	// 6. Start background sampler in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	qrTokenHandler := handler.NewQRTokenHandler(qrTokenService)
	optimizerHandler := handler.NewOptimizerHandler(optimizerService)
	dashboardHandler := handler.NewDashboardHandler(activityService)
	adminHandler := handler.NewAdminHandler(userService)

	// 10. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "syscall-optimizer-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/qr-login", authHandler.QRLogin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// QR token routes (authenticated)
	qr := r.Group("/qr")
	qr.Use(middleware.AuthMiddleware())
	{
		qr.GET("", qrTokenHandler.Current)
		qr.GET("/image", qrTokenHandler.Image)
		qr.POST("/regenerate", qrTokenHandler.Regenerate)
		qr.POST("/revoke", qrTokenHandler.Revoke)
		qr.POST("/activate", qrTokenHandler.Activate)

		// Admin-only maintenance
		qr.DELETE("/purge/:user_id", middleware.RequireAdmin(), qrTokenHandler.Purge)
	}

	// Optimizer routes (authenticated)
	optimizer := r.Group("/optimizer")
	optimizer.Use(middleware.AuthMiddleware())
	{
		optimizer.GET("/performance", optimizerHandler.Performance)
		optimizer.GET("/recommendations", optimizerHandler.Recommendations)
		optimizer.GET("/categories", optimizerHandler.Categories)
		optimizer.GET("/syscalls/:name", optimizerHandler.SyscallDetails)
		optimizer.POST("/simulate", optimizerHandler.Simulate)
	}

	// Dashboard and activity routes (authenticated)
	dashboard := r.Group("/")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/dashboard/stats", dashboardHandler.Stats)
		dashboard.GET("/activity", dashboardHandler.Activity)
		dashboard.GET("/activity/export", dashboardHandler.ExportActivity)

		// Staff and admin see all users' activity
		dashboard.GET("/admin/activity", middleware.RequireStaff(), dashboardHandler.AllActivity)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:id/role", adminHandler.ChangeRole)
		admin.PATCH("/users/:id/active", adminHandler.SetActive)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Info().Msg("Server exited")
}
